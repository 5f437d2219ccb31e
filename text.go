package vroom

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("vroom: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

var goRegularSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
})

// DefaultFont returns Go Regular at the given size. The font data is parsed
// once and shared.
func DefaultFont(size float64) *Font {
	source, err := goRegularSource()
	if err != nil {
		// goregular.TTF is embedded and known-good.
		panic(fmt.Sprintf("vroom: go regular font: %v", err))
	}
	return newFont(source, size)
}

// Measure returns the width and height of the rendered text.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() float64 {
	return f.face.Metrics().HAscent
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// MultilineText draws s split on '\n', one line every margin units starting
// with the first baseline at (x, y). A margin of zero draws every line at
// the same y.
func MultilineText(dst *ebiten.Image, s string, x, y, margin float64, f *Font, clr color.Color, align TextAlign) {
	lines := strings.Split(s, "\n")
	tops := lineOrigins(len(lines), y, margin, f.Ascent())
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, tops[i])
		op.ColorScale.ScaleWithColor(clr)
		op.PrimaryAlign = align.textAlign()
		text.Draw(dst, line, f.face, op)
	}
}

// lineOrigins returns the top-left y of each line drawn by MultilineText.
func lineOrigins(lines int, y, margin, ascent float64) []float64 {
	out := make([]float64, lines)
	for i := range out {
		out[i] = y + margin*float64(i) - ascent
	}
	return out
}

func (a TextAlign) textAlign() text.Align {
	switch a {
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
