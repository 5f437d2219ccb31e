package vroom

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.TPS != 60 {
		t.Errorf("size/tps = %dx%d@%d", cfg.Width, cfg.Height, cfg.TPS)
	}
	if cfg.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Background = %v, want white", cfg.Background)
	}
	if len(cfg.PreventDefaultKeys) != 5 {
		t.Errorf("PreventDefaultKeys = %v, want space + 4 arrows", cfg.PreventDefaultKeys)
	}
	if cfg.MaxLayers != DefaultMaxLayers {
		t.Errorf("MaxLayers = %d", cfg.MaxLayers)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#000000", color.RGBA{0, 0, 0, 255}, false},
		{"#1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}, false},
		{"ABC", color.RGBA{0xaa, 0xbb, 0xcc, 255}, false},
		{" #102030 ", color.RGBA{0x10, 0x20, 0x30, 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#ggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"width": 640,
		"height": 360,
		"background": "#102030",
		"preventDefaultKeys": ["Space"],
		"maxLayers": 8,
		"title": "test"
	}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 360 {
		t.Errorf("size = %dx%d, want 640x360", cfg.Width, cfg.Height)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want default 60", cfg.TPS)
	}
	if cfg.Background != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Background = %v", cfg.Background)
	}
	if len(cfg.PreventDefaultKeys) != 1 || cfg.PreventDefaultKeys[0] != ebiten.KeySpace {
		t.Errorf("PreventDefaultKeys = %v, want [Space]", cfg.PreventDefaultKeys)
	}
	if cfg.MaxLayers != 8 || cfg.Title != "test" {
		t.Errorf("MaxLayers/Title = %d/%q", cfg.MaxLayers, cfg.Title)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	d := DefaultConfig()
	if cfg.Width != d.Width || cfg.Background != d.Background || len(cfg.PreventDefaultKeys) != len(d.PreventDefaultKeys) {
		t.Errorf("empty config = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{`},
		{"bad colour", `{"background": "red"}`},
		{"bad key", `{"preventDefaultKeys": ["Nope"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
