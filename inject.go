package vroom

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticPress
	syntheticRelease
	syntheticKeyDown
	syntheticKeyUp
)

// syntheticEvent is a single injected input event. Pointer coordinates are
// logical canvas coordinates, the same space entities and hit-tests use.
type syntheticEvent struct {
	kind syntheticKind
	pos  Vec2
	key  ebiten.Key
}

// InjectMove queues a mouse move to (x, y).
// The event is consumed on the next frame's input poll.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticMove, pos: Vec2{x, y}})
}

// InjectPress queues a left-button press at (x, y).
func (e *Engine) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticPress, pos: Vec2{x, y}})
}

// InjectRelease queues a left-button release at (x, y). The release raises
// the click flag exactly like a real one.
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticRelease, pos: Vec2{x, y}})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectKey queues a key press followed by a key release held for the given
// number of frames (minimum 1).
func (e *Engine) InjectKey(k ebiten.Key, frames int) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticKeyDown, key: k})
	// Holding is modelled as moves at the current position.
	for i := 1; i < frames; i++ {
		e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticMove, pos: e.input.Mouse.Pos})
	}
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticKeyUp, key: k})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real mouse input should be skipped).
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		e.input.mouseMove(evt.pos)
	case syntheticPress:
		e.input.mouseDown(evt.pos)
	case syntheticRelease:
		e.input.mouseUp(evt.pos)
	case syntheticKeyDown:
		e.input.keyDown(evt.key)
	case syntheticKeyUp:
		e.input.keyUp(evt.key)
	}
	return true
}
