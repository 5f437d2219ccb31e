package vroom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSEntity returns an entity that displays the current FPS and TPS in
// the top-left corner of the canvas. The readout refreshes every ~0.5
// seconds and is not affected by the camera.
func NewFPSEntity(layer int) *Entity {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	var img *ebiten.Image
	var sinceRefresh float64
	dirty := true

	return &Entity{
		Layer: layer,
		OnUpdate: func(step float64) {
			sinceRefresh += step
			if sinceRefresh < 0.5 {
				return
			}
			sinceRefresh = 0
			dirty = true
		},
		OnRender: func(dst *ebiten.Image, _ CameraView) {
			if img == nil {
				img = ebiten.NewImage(100, 32)
			}
			if dirty {
				dirty = false
				img.Clear()
				// Semi-transparent background for readability
				img.Fill(color.RGBA{0, 0, 0, 128})
				ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
			}
			dst.DrawImage(img, nil)
		},
	}
}
