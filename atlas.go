package vroom

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Region describes a named sub-rectangle within an atlas page.
type Region struct {
	Page    int             // index into Atlas.Pages
	Rect    image.Rectangle // the sub-image rect within the page
	Source  Size            // untrimmed size as authored
	Rotated bool            // stored 90 degrees clockwise; drawn as stored
}

// Atlas holds one or more page images and a map of named regions, as
// exported by TexturePacker.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]Region
}

// Region returns the region for name and whether it exists.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Sprite creates a loaded sprite from a named region. Frame dimensions left
// at zero in opts default to the region size, so a horizontal strip packed
// as one region animates with FrameWidth set. Unknown names log a warning
// and return a 1x1 magenta sprite.
func (a *Atlas) Sprite(name string, opts SpriteOptions) *Sprite {
	r, ok := a.regions[name]
	if !ok || r.Page < 0 || r.Page >= len(a.Pages) || a.Pages[r.Page] == nil {
		warnf("vroom: atlas region %q not found, using magenta placeholder", name)
		return NewSpriteFromImage(ensureMagentaImage(), SpriteOptions{})
	}
	img := a.Pages[r.Page].SubImage(r.Rect).(*ebiten.Image)
	return NewSpriteFromImage(img, opts)
}

// magenta placeholder singleton (no sync.Once — only the loop thread draws)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages ...*ebiten.Image) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("vroom: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]Region),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("vroom: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame      jsonRect `json:"frame"`
	Rotated    bool     `json:"rotated"`
	SourceSize jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("vroom: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("vroom: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, i)
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page int) Region {
	return Region{
		Page:    page,
		Rect:    image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
		Source:  Size{float64(f.SourceSize.W), float64(f.SourceSize.H)},
		Rotated: f.Rotated,
	}
}
