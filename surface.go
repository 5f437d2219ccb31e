package vroom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// surface owns the logical canvas and the mapping between it and the
// physical window. The canvas is scaled uniformly to fit and centered.
type surface struct {
	logical Size
	outside Size
	scale   float64
	offset  Vec2
	canvas  *ebiten.Image
}

func newSurface(w, h int) surface {
	s := surface{logical: Size{float64(w), float64(h)}, scale: 1}
	s.resize(w, h)
	return s
}

// resize recomputes scale and offset for a physical size. It reports whether
// anything changed.
func (s *surface) resize(outW, outH int) bool {
	out := Size{float64(outW), float64(outH)}
	if out == s.outside {
		return false
	}
	s.outside = out
	if out.Width <= 0 || out.Height <= 0 {
		s.scale = 1
		s.offset = Vec2{}
		return true
	}
	s.scale = math.Min(out.Width/s.logical.Width, out.Height/s.logical.Height)
	s.offset = Vec2{
		X: (out.Width - s.logical.Width*s.scale) / 2,
		Y: (out.Height - s.logical.Height*s.scale) / 2,
	}
	return true
}

// toLogical maps a physical cursor position to canvas coordinates.
func (s *surface) toLogical(x, y int) Vec2 {
	return Vec2{
		X: (float64(x) - s.offset.X) / s.scale,
		Y: (float64(y) - s.offset.Y) / s.scale,
	}
}

// target returns the logical canvas, allocating it on first use.
func (s *surface) target() *ebiten.Image {
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(int(s.logical.Width), int(s.logical.Height))
	}
	return s.canvas
}

// present blits the canvas onto the physical screen.
func (s *surface) present(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(s.offset.X, s.offset.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.canvas, &op)
}
