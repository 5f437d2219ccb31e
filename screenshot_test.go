package vroom

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	e := newTestEngine(60)
	e.Screenshot("a")
	e.Screenshot("b")
	e.Screenshot("c")
	if len(e.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(e.screenshotQueue))
	}
	if e.screenshotQueue[0] != "a" || e.screenshotQueue[1] != "b" || e.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", e.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	e := newTestEngine(60)
	if e.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", e.ScreenshotDir, "screenshots")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")

	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, a := got.At(1, 1).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,1) = %v, want opaque red", got.At(1, 1))
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}
