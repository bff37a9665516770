// Package audio decodes WAV files into 16-bit PCM and converts sample
// rates to the rate the recognition model was trained on.
package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// ErrNotMono is returned when the audio file declares more than one
// channel. Multi-channel audio is rejected outright, there is no
// automatic downmix.
var ErrNotMono = errors.New("audio: channel count must be 1")

// Stream is a fully decoded audio file: the flat sample sequence and the
// sample rate declared by the container.
type Stream struct {
	Samples    []int16
	SampleRate int
}

// Duration returns the stream length in seconds.
func (s *Stream) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// DecodeFile opens a WAV file and decodes it entirely into memory.
// The file must be mono 16-bit PCM; anything else is an error. The
// sample rate is read from the file header, not assumed.
func DecodeFile(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %q: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: decode %q: %w", path, err)
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("audio: decode %q: missing format description", path)
	}
	if ch := buf.Format.NumChannels; ch != 1 {
		return nil, fmt.Errorf("%w: %q has %d channels", ErrNotMono, path, ch)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("audio: decode %q: unsupported bit depth %d (want 16)", path, dec.BitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}

	return &Stream{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
	}, nil
}
