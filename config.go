package vroom

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config describes the logical canvas and loop settings for an Engine.
type Config struct {
	// Width and Height are the logical canvas size. The canvas is scaled to
	// fit the physical window.
	Width, Height int
	// TPS is the number of fixed simulation ticks per second.
	TPS int
	// PreventDefaultKeys lists keys whose default host behaviour should be
	// suppressed. Ebitengine never forwards key events to a host page, so the
	// list is kept for configuration parity and logged by SetDebugMode.
	PreventDefaultKeys []ebiten.Key
	// Background fills the canvas before every render pass.
	Background color.RGBA
	// Title is the window title used by Run.
	Title string
	// MaxLayers is the number of draw layers. Zero uses DefaultMaxLayers.
	MaxLayers int
	// SampleRate is the audio context sample rate used by Sound.
	SampleRate int
	// ScreenshotDir is the output directory for Screenshot.
	ScreenshotDir string
	// ShowFPS registers an FPS/TPS readout on the top layer.
	ShowFPS bool
}

// DefaultConfig returns a 1280x720, 60 TPS configuration with a white
// background and arrow keys plus space marked as prevent-default.
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		PreventDefaultKeys: []ebiten.Key{
			ebiten.KeySpace,
			ebiten.KeyArrowLeft, ebiten.KeyArrowUp,
			ebiten.KeyArrowRight, ebiten.KeyArrowDown,
		},
		Background:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Title:         "vroom",
		MaxLayers:     DefaultMaxLayers,
		SampleRate:    44100,
		ScreenshotDir: "screenshots",
	}
}

// normalize fills zero fields with defaults.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.MaxLayers <= 0 {
		c.MaxLayers = d.MaxLayers
	}
	if c.SampleRate <= 0 {
		c.SampleRate = d.SampleRate
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}

// jsonConfig is the on-disk form of Config. Background is a CSS-style hex
// string.
type jsonConfig struct {
	Width              int          `json:"width"`
	Height             int          `json:"height"`
	TPS                int          `json:"tps"`
	PreventDefaultKeys []ebiten.Key `json:"preventDefaultKeys"`
	Background         string       `json:"background"`
	Title              string       `json:"title"`
	MaxLayers          int          `json:"maxLayers"`
	SampleRate         int          `json:"sampleRate"`
	ScreenshotDir      string       `json:"screenshotDir"`
	ShowFPS            bool         `json:"showFPS"`
}

// LoadConfig parses a JSON configuration. Fields that are absent keep their
// DefaultConfig values.
func LoadConfig(jsonData []byte) (Config, error) {
	d := DefaultConfig()
	raw := jsonConfig{
		Width:              d.Width,
		Height:             d.Height,
		TPS:                d.TPS,
		PreventDefaultKeys: d.PreventDefaultKeys,
		Title:              d.Title,
		MaxLayers:          d.MaxLayers,
		SampleRate:         d.SampleRate,
		ScreenshotDir:      d.ScreenshotDir,
	}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return Config{}, fmt.Errorf("vroom: parse config: %w", err)
	}
	cfg := Config{
		Width:              raw.Width,
		Height:             raw.Height,
		TPS:                raw.TPS,
		PreventDefaultKeys: raw.PreventDefaultKeys,
		Background:         d.Background,
		Title:              raw.Title,
		MaxLayers:          raw.MaxLayers,
		SampleRate:         raw.SampleRate,
		ScreenshotDir:      raw.ScreenshotDir,
		ShowFPS:            raw.ShowFPS,
	}
	if raw.Background != "" {
		c, err := ParseHexColor(raw.Background)
		if err != nil {
			return Config{}, fmt.Errorf("vroom: parse config: %w", err)
		}
		cfg.Background = c
	}
	return cfg.normalize(), nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" (the leading # is optional) into an
// opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
