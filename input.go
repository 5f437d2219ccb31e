package vroom

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// warnf reports recoverable misuse. Replaced in tests to capture warnings.
var warnf = log.Printf

// Mouse is the per-tick mouse snapshot in logical coordinates.
type Mouse struct {
	Pos     Vec2
	Down    bool
	Clicked bool // one-shot; cleared at the end of every tick
}

// Input holds keyboard and mouse state. Device events only mutate the
// snapshot; entities read it during their update.
type Input struct {
	keys  map[ebiten.Key]bool
	Mouse Mouse

	// onClick is called whenever the click flag is raised.
	onClick func(pos Vec2)

	keyBuf []ebiten.Key
}

func newInput() *Input {
	return &Input{keys: make(map[ebiten.Key]bool)}
}

// KeyPressed reports whether k is currently held. Keys never seen are false.
func (in *Input) KeyPressed(k ebiten.Key) bool {
	return in.keys[k]
}

func (in *Input) keyDown(k ebiten.Key) { in.keys[k] = true }
func (in *Input) keyUp(k ebiten.Key)   { in.keys[k] = false }

func (in *Input) mouseMove(p Vec2) { in.Mouse.Pos = p }

func (in *Input) mouseDown(p Vec2) {
	in.Mouse.Pos = p
	in.Mouse.Down = true
}

// mouseUp releases the button and raises the click flag, matching a
// browser's mouseup followed by click.
func (in *Input) mouseUp(p Vec2) {
	in.Mouse.Pos = p
	in.Mouse.Down = false
	in.Mouse.Clicked = true
	if in.onClick != nil {
		in.onClick(p)
	}
}

func (in *Input) resetClick() {
	in.Mouse.Clicked = false
}

// pollKeys mirrors Ebitengine's key transitions into the key map.
func (in *Input) pollKeys() {
	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.keyDown(k)
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.keyUp(k)
	}
}

// pollMouse reads the cursor and left button. Physical coordinates are
// mapped onto the logical canvas by the surface scale.
func (in *Input) pollMouse(s *surface) {
	mx, my := ebiten.CursorPosition()
	p := s.toLogical(mx, my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.mouseDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.mouseUp(p)
	default:
		in.mouseMove(p)
	}
}

// --- Engine input API ---

// Input returns the engine's input snapshot.
func (e *Engine) Input() *Input {
	return e.input
}

// MousePos returns the logical mouse position.
func (e *Engine) MousePos() Vec2 {
	return e.input.Mouse.Pos
}

// IsKeyPressed reports whether k is held.
func (e *Engine) IsKeyPressed(k ebiten.Key) bool {
	return e.input.KeyPressed(k)
}

// ResetClick clears the one-shot click flag. Call it after handling a click
// that must not reach entities updated later in the same tick.
func (e *Engine) ResetClick() {
	e.input.resetClick()
}

// IsMouseOverArea reports whether the mouse lies strictly inside the
// rectangle. With cameraRelative the rectangle is first moved into camera
// space: origin pos*zoom - camPos, extents dim*zoom.
func (e *Engine) IsMouseOverArea(pos Vec2, dim Size, cameraRelative bool) bool {
	if cameraRelative {
		view := e.camera.View()
		pos = view.Project(pos)
		dim = dim.Scale(view.Zoom)
	}
	m := e.input.Mouse.Pos
	return m.X > pos.X && m.X < pos.X+dim.Width &&
		m.Y > pos.Y && m.Y < pos.Y+dim.Height
}

// IsAreaClicked reports whether a click happened this tick over the area.
// The click flag is not consumed.
func (e *Engine) IsAreaClicked(pos Vec2, dim Size, cameraRelative bool) bool {
	if !e.input.Mouse.Clicked {
		return false
	}
	return e.IsMouseOverArea(pos, dim, cameraRelative)
}

// IsEntityClicked hit-tests a registered entity's bounds. Missing ids are
// false; a payload without Bounded logs a warning and is false.
func (e *Engine) IsEntityClicked(id ID, cameraRelative bool) bool {
	ent, ok := e.reg.Entity(id)
	if !ok {
		return false
	}
	b, ok := ent.Payload.(Bounded)
	if !ok {
		warnf("vroom: IsEntityClicked(%s): entity has no bounds", id)
		return false
	}
	pos, dim := b.Bounds()
	return e.IsAreaClicked(pos, dim, cameraRelative)
}
