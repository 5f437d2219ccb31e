package vroom

import "github.com/hajimehoshi/ebiten/v2"

// Run opens a resizable window sized to the engine's logical canvas and
// runs the game loop until the window is closed. Update is synced to the
// display refresh; the engine's own accumulator provides the fixed step.
//
// For full control, use Engine directly as an ebiten.Game instead.
func Run(e *Engine) error {
	cfg := e.Config()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return ebiten.RunGame(e)
}
