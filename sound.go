package vroom

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioContext returns the shared audio context, creating it at the
// configured sample rate on first use. Ebitengine allows one context per
// process, so an existing context is reused.
func (e *Engine) AudioContext() *audio.Context {
	if e.audioCtx == nil {
		if ctx := audio.CurrentContext(); ctx != nil {
			e.audioCtx = ctx
		} else {
			e.audioCtx = audio.NewContext(e.cfg.SampleRate)
		}
	}
	return e.audioCtx
}

// Sound is a fully decoded clip. Each Play starts a fresh player, so a
// sound can overlap itself. Gain applies to players started afterwards.
type Sound struct {
	ctx  *audio.Context
	fsys fs.FS
	path string

	pcm     atomic.Pointer[[]byte]
	loading atomic.Bool

	// Gain is the playback volume, 1 by default.
	Gain float64

	player *audio.Player
}

// NewSound creates an unloaded sound for path in fsys. Call Load to decode.
func (e *Engine) NewSound(fsys fs.FS, path string) *Sound {
	return &Sound{ctx: e.AudioContext(), fsys: fsys, path: path, Gain: 1}
}

// Load starts decoding in a background goroutine. Wav and Ogg Vorbis are
// recognised by file extension. Failures log a warning and the sound
// never becomes ready. Calling Load again while loading or after success
// does nothing.
func (s *Sound) Load() {
	if s.pcm.Load() != nil || !s.loading.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer s.loading.Store(false)
		pcm, err := decodeSound(s.fsys, s.path, s.ctx.SampleRate())
		if err != nil {
			warnf("vroom: sound %s: %v", s.path, err)
			return
		}
		s.pcm.Store(&pcm)
	}()
}

// decodeSound reads path and returns 16-bit stereo PCM at sampleRate.
func decodeSound(fsys fs.FS, name string, sampleRate int) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg", ".oga":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return pcm, nil
}

// Ready reports whether the clip has been decoded.
func (s *Sound) Ready() bool {
	return s.pcm.Load() != nil
}

// Play starts the clip from the beginning. It does nothing until Ready.
func (s *Sound) Play() {
	pcm := s.pcm.Load()
	if pcm == nil {
		return
	}
	p := s.ctx.NewPlayerFromBytes(*pcm)
	p.SetVolume(s.Gain)
	p.Play()
	s.player = p
}

// Playing reports whether the most recently started player is still playing.
func (s *Sound) Playing() bool {
	return s.player != nil && s.player.IsPlaying()
}

// Stop pauses the most recently started player.
func (s *Sound) Stop() {
	if s.player != nil {
		s.player.Pause()
	}
}
