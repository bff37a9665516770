package transcribe

import (
	"fmt"
	"log/slog"

	astideepspeech "github.com/asticode/go-astideepspeech"

	"github.com/chaz8081/gostt-file/internal/models"
)

// DeepSpeechTranscriber wraps a DeepSpeech acoustic model and, when one
// was located, an external scorer.
type DeepSpeechTranscriber struct {
	model *astideepspeech.Model
}

// NewDeepSpeechTranscriber loads the acoustic model from the selection
// and attaches the scorer if present. The caller must call Close() when
// done.
func NewDeepSpeechTranscriber(sel models.Selection) (*DeepSpeechTranscriber, error) {
	m, err := astideepspeech.New(sel.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: load deepspeech model %q: %w", sel.ModelPath, err)
	}

	if sel.HasScorer() {
		if err := m.EnableExternalScorer(sel.ScorerPath); err != nil {
			m.Close()
			return nil, fmt.Errorf("transcribe: enable scorer %q: %w", sel.ScorerPath, err)
		}
		slog.Info("using external scorer", "path", sel.ScorerPath)
	}

	return &DeepSpeechTranscriber{model: m}, nil
}

// Close releases the DeepSpeech model resources.
func (t *DeepSpeechTranscriber) Close() error {
	if t.model != nil {
		return t.model.Close()
	}
	return nil
}

// Transcribe runs speech-to-text over the whole sample buffer.
func (t *DeepSpeechTranscriber) Transcribe(samples []int16) (string, error) {
	text, err := t.model.SpeechToText(samples)
	if err != nil {
		return "", fmt.Errorf("transcribe: speech to text: %w", err)
	}
	return text, nil
}
