// Package transcribe provides speech-to-text engines operating on mono
// 16 kHz 16-bit PCM buffers.
//
// Supported engines:
//   - deepspeech: DeepSpeech via Go bindings, with optional external
//     scorer (default)
//   - whisper: whisper.cpp via Go bindings
package transcribe

import (
	"fmt"

	"github.com/chaz8081/gostt-file/internal/config"
	"github.com/chaz8081/gostt-file/internal/models"
)

// Transcriber converts audio samples to text.
type Transcriber interface {
	// Transcribe runs single-shot recognition over the whole buffer of
	// mono 16kHz int16 samples and returns the transcript.
	Transcribe(samples []int16) (string, error)
	// Close releases engine resources.
	Close() error
}

// New creates a Transcriber for the selected model based on the config
// engine setting.
func New(cfg *config.Config, sel models.Selection) (Transcriber, error) {
	switch cfg.Engine {
	case "whisper":
		return NewWhisperTranscriber(sel)
	case "deepspeech", "":
		return NewDeepSpeechTranscriber(sel)
	default:
		return nil, fmt.Errorf("transcribe: unknown engine %q (supported: deepspeech, whisper)", cfg.Engine)
	}
}
