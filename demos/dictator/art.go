package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/vroom"
)

// Placeholder art used when no -assets directory is given.

func placeholder(w, h int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return img
}

func cardPlaceholder(kind string) *ebiten.Image {
	img := placeholder(cardW, cardH, color.RGBA{0xf4, 0xf1, 0xe8, 0xff})
	band := cardFieldColor
	if kind == "public_work" {
		band = cardHappyColor
	}
	vector.DrawFilledRect(img, 0, cardH-60, cardW, 60, band, false)
	vector.StrokeRect(img, 1, 1, cardW-2, cardH-2, 2, cardTextColor, false)
	return img
}

// dictatorStrip draws a horizontal strip of frames with a bobbing head so
// the animation is visible.
func dictatorStrip(opts vroom.SpriteOptions) *ebiten.Image {
	fw, fh := float32(opts.FrameWidth), float32(opts.FrameHeight)
	img := ebiten.NewImage(int(fw)*opts.Frames, int(fh))
	for i := 0; i < opts.Frames; i++ {
		x := float32(i) * fw
		bob := float32(i%4) - 2
		vector.DrawFilledRect(img, x+8, 30, fw-16, fh-30, color.RGBA{0x3b, 0x5a, 0x2a, 0xff}, false)
		vector.DrawFilledCircle(img, x+fw/2, 18+bob, 12, color.RGBA{0xe0, 0xb0, 0x90, 0xff}, false)
	}
	return img
}
