package vroom

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/fstest"
)

// encodeWAV builds a 16-bit stereo PCM wav with the given sample frames.
func encodeWAV(sampleRate, frames int) []byte {
	dataLen := frames * 4
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*4))
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))
	return buf.Bytes()
}

func TestDecodeSound(t *testing.T) {
	fsys := fstest.MapFS{
		"beep.wav":   {Data: encodeWAV(44100, 64)},
		"beep.mp3":   {Data: []byte("ID3")},
		"broken.wav": {Data: []byte("RIFF")},
	}

	pcm, err := decodeSound(fsys, "beep.wav", 44100)
	if err != nil {
		t.Fatalf("decodeSound: %v", err)
	}
	if len(pcm) == 0 {
		t.Error("decoded wav is empty")
	}

	tests := []struct {
		name string
		path string
	}{
		{"unsupported extension", "beep.mp3"},
		{"missing file", "nope.wav"},
		{"corrupt wav", "broken.wav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeSound(fsys, tt.path, 44100); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSoundPlayBeforeReady(t *testing.T) {
	s := &Sound{Gain: 1}
	if s.Ready() {
		t.Fatal("new sound reported ready")
	}
	// Play and Stop on an undecoded sound are no-ops.
	s.Play()
	s.Stop()
	if s.Playing() {
		t.Error("undecoded sound reported playing")
	}
}
