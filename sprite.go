package vroom

import (
	"image"
	_ "image/jpeg" // register decoders for LoadSprite
	_ "image/png"
	"io/fs"
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteOptions configures a Sprite. Zero frame dimensions are backfilled
// from the image once it has loaded.
type SpriteOptions struct {
	Animated bool
	// Duration is the time each frame is shown, in hundredths of a second.
	Duration float64
	// FrameWidth and FrameHeight are the size of one frame in the sheet.
	FrameWidth, FrameHeight float64
	// Frames is the number of frames in the animation.
	Frames int
	// Spacing is the gap in pixels between consecutive frames.
	Spacing float64
}

// Sprite is an image with optional frame-strip animation. A sprite loaded
// with LoadSprite decodes in the background and stays invisible until ready.
type Sprite struct {
	opts  SpriteOptions
	frame int
	// elapsed is the time in seconds since the last frame change.
	elapsed float64

	img     *ebiten.Image
	imgW    float64
	pending atomic.Pointer[image.Image]
	loaded  bool
}

// LoadSprite starts decoding path from fsys in a background goroutine and
// returns immediately. Loaded turns true on the first loop-thread call after
// decoding finishes. A decode failure logs a warning; the sprite then never
// loads and renders nothing.
func LoadSprite(fsys fs.FS, path string, opts SpriteOptions) *Sprite {
	s := &Sprite{opts: opts}
	go func() {
		f, err := fsys.Open(path)
		if err != nil {
			warnf("vroom: sprite %s: %v", path, err)
			return
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			warnf("vroom: sprite %s: decode: %v", path, err)
			return
		}
		s.pending.Store(&img)
	}()
	return s
}

// NewSpriteFromImage creates a sprite that is loaded immediately.
func NewSpriteFromImage(img *ebiten.Image, opts SpriteOptions) *Sprite {
	s := &Sprite{opts: opts}
	s.attach(img)
	return s
}

// attach installs the ebiten image and backfills zero frame dimensions.
func (s *Sprite) attach(img *ebiten.Image) {
	b := img.Bounds()
	s.img = img
	s.imgW = float64(b.Dx())
	if s.opts.FrameWidth == 0 {
		s.opts.FrameWidth = float64(b.Dx())
	}
	if s.opts.FrameHeight == 0 {
		s.opts.FrameHeight = float64(b.Dy())
	}
	s.loaded = true
}

// finalize moves a decoded image onto the GPU. Must run on the loop thread.
func (s *Sprite) finalize() {
	if s.loaded {
		return
	}
	p := s.pending.Swap(nil)
	if p == nil {
		return
	}
	s.attach(ebiten.NewImageFromImage(*p))
}

// Loaded reports whether the image is ready to draw.
func (s *Sprite) Loaded() bool {
	s.finalize()
	return s.loaded
}

// Frame returns the current frame index.
func (s *Sprite) Frame() int {
	return s.frame
}

// Size returns the frame size. Before load it is whatever was configured.
func (s *Sprite) Size() Size {
	return Size{s.opts.FrameWidth, s.opts.FrameHeight}
}

// Options returns the sprite's options, including backfilled dimensions.
func (s *Sprite) Options() SpriteOptions {
	return s.opts
}

// Reset rewinds the animation to frame 0.
func (s *Sprite) Reset() {
	s.frame = 0
	s.elapsed = 0
}

// Update advances the animation by step seconds. At most one frame is
// advanced per call; the frame wraps to 0 once it reaches the frame count.
func (s *Sprite) Update(step float64) {
	s.finalize()
	if !s.opts.Animated {
		return
	}
	s.elapsed += step
	if s.elapsed >= s.opts.Duration/100 {
		s.frame++
		s.elapsed = 0
	}
	if s.frame >= s.opts.Frames {
		s.frame = 0
	}
}

// sourceRect returns the sheet slice for the current frame. The row term
// floor(i*fw/imgW) is a pixel offset, not a row multiplied by the frame
// height, so multi-row sheets only work when that is what the art expects.
func (s *Sprite) sourceRect() image.Rectangle {
	i := float64(s.frame)
	fw, fh := s.opts.FrameWidth, s.opts.FrameHeight
	sx := i*fw + i*s.opts.Spacing
	var sy float64
	if s.imgW > 0 {
		sy = math.Floor(i*fw/s.imgW) + i*s.opts.Spacing
	}
	return image.Rect(int(sx), int(sy), int(sx+fw), int(sy+fh))
}

// Render draws the current frame at (x, y) scaled to w x h. Zero w or h use
// the frame size. Nothing is drawn until the sprite has loaded.
func (s *Sprite) Render(dst *ebiten.Image, x, y, w, h float64) {
	s.finalize()
	if !s.loaded {
		return
	}
	if w == 0 {
		w = s.opts.FrameWidth
	}
	if h == 0 {
		h = s.opts.FrameHeight
	}
	// Atlas sprites are sub-images whose bounds do not start at the origin.
	src := s.img.SubImage(s.sourceRect().Add(s.img.Bounds().Min)).(*ebiten.Image)
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/s.opts.FrameWidth, h/s.opts.FrameHeight)
	op.GeoM.Translate(x, y)
	dst.DrawImage(src, &op)
}
