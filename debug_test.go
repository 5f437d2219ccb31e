package vroom

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_LogsSettings(t *testing.T) {
	e := newTestEngine(60)
	output := captureStderr(t, func() { e.SetDebugMode(true) })
	if !strings.Contains(output, "[vroom] layers: 6") {
		t.Errorf("expected layer count in debug output, got: %q", output)
	}
	if !strings.Contains(output, "prevent-default keys") {
		t.Errorf("expected prevent-default keys in debug output, got: %q", output)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	e := newTestEngine(60)
	e.Register(&Entity{OnRender: func(*ebiten.Image, CameraView) {}})
	output := captureStderr(t, func() {
		e.Advance(e.Step())
		e.Draw(ebiten.NewImage(1280, 720))
	})
	if output != "" {
		t.Errorf("debug off wrote to stderr: %q", output)
	}
}

func TestDebugMode_FrameStats(t *testing.T) {
	e := newTestEngine(60)
	e.Register(&Entity{OnRender: func(*ebiten.Image, CameraView) {}})
	e.Register(&Entity{})
	e.Advance(e.Step())

	output := captureStderr(t, func() {
		e.SetDebugMode(true)
		e.Draw(ebiten.NewImage(1280, 720))
	})
	if !strings.Contains(output, "entities: 2 | drawn: 1") {
		t.Errorf("expected entity stats in debug output, got: %q", output)
	}
	if e.stats.entities != 2 || e.stats.drawn != 1 {
		t.Errorf("stats = %+v", e.stats)
	}
}
