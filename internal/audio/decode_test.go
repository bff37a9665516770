package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV writes a 16-bit PCM WAV file with the given interleaved
// samples and returns its path.
func writeWAV(t *testing.T, samples []int, sampleRate, channels int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating wav file: %v", err)
	}
	defer f.Close()

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing wav encoder: %v", err)
	}
	return path
}

func TestDecodeFileMono(t *testing.T) {
	in := []int{0, 1000, -1000, 32767, -32768, 42}
	path := writeWAV(t, in, 8000, 1)

	stream, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile returned error: %v", err)
	}
	if stream.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", stream.SampleRate)
	}
	if len(stream.Samples) != len(in) {
		t.Fatalf("decoded %d samples, want %d", len(stream.Samples), len(in))
	}
	for i, want := range in {
		if got := stream.Samples[i]; int(got) != want {
			t.Errorf("Samples[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestDecodeFileStereoRejected(t *testing.T) {
	// Two channels, two frames.
	path := writeWAV(t, []int{1, 2, 3, 4}, 16000, 2)

	_, err := DecodeFile(path)
	if err == nil {
		t.Fatal("decoding stereo audio should fail")
	}
	if !errors.Is(err, ErrNotMono) {
		t.Errorf("error = %v, want ErrNotMono", err)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("decoding a missing file should fail")
	}
}

func TestDecodeFileNotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("this is not audio"), 0644); err != nil {
		t.Fatalf("writing junk file: %v", err)
	}

	_, err := DecodeFile(path)
	if err == nil {
		t.Fatal("decoding a non-WAV file should fail")
	}
}

func TestStreamDuration(t *testing.T) {
	s := &Stream{Samples: make([]int16, 8000), SampleRate: 8000}
	if d := s.Duration(); d != 1.0 {
		t.Errorf("Duration() = %v, want 1.0", d)
	}
}
