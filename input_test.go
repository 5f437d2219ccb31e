package vroom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// box is a Bounded payload for hit-test tests.
type box struct {
	pos Vec2
	dim Size
}

func (b *box) Bounds() (Vec2, Size) { return b.pos, b.dim }

// captureWarnings redirects warnf for the duration of the test.
func captureWarnings(t *testing.T) *[]string {
	t.Helper()
	var got []string
	prev := warnf
	warnf = func(format string, args ...any) {
		got = append(got, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { warnf = prev })
	return &got
}

func TestKeyState(t *testing.T) {
	in := newInput()
	if in.KeyPressed(ebiten.KeyA) {
		t.Error("unseen key reported pressed")
	}
	in.keyDown(ebiten.KeyA)
	if !in.KeyPressed(ebiten.KeyA) {
		t.Error("key not pressed after keyDown")
	}
	in.keyUp(ebiten.KeyA)
	if in.KeyPressed(ebiten.KeyA) {
		t.Error("key still pressed after keyUp")
	}
}

func TestMouseDownUpClick(t *testing.T) {
	in := newInput()
	in.mouseDown(Vec2{5, 6})
	if !in.Mouse.Down || in.Mouse.Clicked {
		t.Errorf("after down: %+v", in.Mouse)
	}
	in.mouseUp(Vec2{7, 8})
	if in.Mouse.Down || !in.Mouse.Clicked || in.Mouse.Pos != (Vec2{7, 8}) {
		t.Errorf("after up: %+v", in.Mouse)
	}
}

func TestIsMouseOverArea(t *testing.T) {
	tests := []struct {
		name   string
		mouse  Vec2
		expect bool
	}{
		{"inside", Vec2{50, 40}, true},
		{"left edge excluded", Vec2{10, 40}, false},
		{"right edge excluded", Vec2{110, 40}, false},
		{"top edge excluded", Vec2{50, 20}, false},
		{"bottom edge excluded", Vec2{50, 70}, false},
		{"just inside corner", Vec2{10.001, 20.001}, true},
		{"outside", Vec2{200, 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(60)
			e.input.mouseMove(tt.mouse)
			got := e.IsMouseOverArea(Vec2{10, 20}, Size{100, 50}, false)
			if got != tt.expect {
				t.Errorf("mouse %v over {10 20 100 50} = %v, want %v", tt.mouse, got, tt.expect)
			}
		})
	}
}

func TestIsMouseOverAreaCameraRelative(t *testing.T) {
	e := newTestEngine(60)
	cam := e.NewCamera(100, 50, 2, AxisBoth, Instant)
	e.ActivateCamera(cam)

	// Area (100,100)-(110,110) becomes (100,150)-(120,170) in camera space.
	tests := []struct {
		name   string
		mouse  Vec2
		expect bool
	}{
		{"inside transformed", Vec2{110, 160}, true},
		{"inside raw only", Vec2{105, 105}, false},
		{"transformed far edge", Vec2{119, 169}, true},
		{"past transformed edge", Vec2{121, 160}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.input.mouseMove(tt.mouse)
			got := e.IsMouseOverArea(Vec2{100, 100}, Size{10, 10}, true)
			if got != tt.expect {
				t.Errorf("mouse %v = %v, want %v", tt.mouse, got, tt.expect)
			}
		})
	}

	e.input.mouseMove(Vec2{105, 105})
	if !e.IsMouseOverArea(Vec2{100, 100}, Size{10, 10}, false) {
		t.Error("screen-relative test should ignore the camera")
	}
}

func TestCameraRelativeWithoutCameraIsIdentity(t *testing.T) {
	e := newTestEngine(60)
	e.input.mouseMove(Vec2{105, 105})
	if !e.IsMouseOverArea(Vec2{100, 100}, Size{10, 10}, true) {
		t.Error("camera-relative test without a camera should use the identity view")
	}
}

func TestOneShotClick(t *testing.T) {
	e := newTestEngine(60)
	area := func() bool { return e.IsAreaClicked(Vec2{0, 0}, Size{100, 100}, false) }

	var hits []bool
	e.Register(&Entity{OnUpdate: func(float64) { hits = append(hits, area()) }})

	e.input.mouseMove(Vec2{50, 50})
	e.Advance(e.Step())
	e.input.mouseUp(Vec2{50, 50})
	e.Advance(e.Step())
	e.Advance(e.Step())

	want := []bool{false, true, false}
	if len(hits) != len(want) {
		t.Fatalf("hits = %v, want %v", hits, want)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("tick %d clicked = %v, want %v", i, hits[i], want[i])
		}
	}
}

func TestIsAreaClickedDoesNotConsume(t *testing.T) {
	e := newTestEngine(60)
	e.input.mouseUp(Vec2{5, 5})
	for i := 0; i < 3; i++ {
		if !e.IsAreaClicked(Vec2{0, 0}, Size{10, 10}, false) {
			t.Fatalf("check %d: click consumed", i)
		}
	}
	e.ResetClick()
	if e.IsAreaClicked(Vec2{0, 0}, Size{10, 10}, false) {
		t.Error("ResetClick did not clear the flag")
	}
}

func TestForegroundResetClickShieldsBackground(t *testing.T) {
	e := newTestEngine(60)
	var dialogHit, boardHit bool
	e.Register(&Entity{Layer: 1, OnUpdate: func(float64) {
		boardHit = e.IsAreaClicked(Vec2{0, 0}, Size{100, 100}, false)
	}})
	e.Register(&Entity{Layer: 6, OnUpdate: func(float64) {
		if e.IsAreaClicked(Vec2{0, 0}, Size{100, 100}, false) {
			dialogHit = true
			e.ResetClick()
		}
	}})

	e.input.mouseUp(Vec2{50, 50})
	e.Advance(e.Step())
	if !dialogHit || boardHit {
		t.Errorf("dialog=%v board=%v, want dialog only", dialogHit, boardHit)
	}
}

func TestIsEntityClicked(t *testing.T) {
	e := newTestEngine(60)
	warnings := captureWarnings(t)

	hit := e.Register(&Entity{Payload: &box{Vec2{10, 10}, Size{20, 20}}})
	bare := e.Register(&Entity{Payload: 42})

	e.input.mouseUp(Vec2{15, 15})

	if !e.IsEntityClicked(hit, false) {
		t.Error("bounded entity under the mouse not clicked")
	}
	if e.IsEntityClicked("_missing", false) {
		t.Error("missing id reported clicked")
	}
	if len(*warnings) != 0 {
		t.Errorf("unexpected warnings: %v", *warnings)
	}

	if e.IsEntityClicked(bare, false) {
		t.Error("entity without bounds reported clicked")
	}
	if len(*warnings) != 1 || !strings.Contains((*warnings)[0], string(bare)) {
		t.Errorf("warnings = %v, want one mentioning %s", *warnings, bare)
	}
}
