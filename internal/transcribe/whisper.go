package transcribe

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/chaz8081/gostt-file/internal/models"
)

// WhisperTranscriber wraps a whisper.cpp model for speech-to-text.
// Whisper has no external scorer concept; a scorer in the model
// directory is skipped.
type WhisperTranscriber struct {
	model whisper.Model
}

// NewWhisperTranscriber loads a whisper model from the selection.
// The caller must call Close() when done.
func NewWhisperTranscriber(sel models.Selection) (*WhisperTranscriber, error) {
	model, err := whisper.New(sel.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: load whisper model %q: %w", sel.ModelPath, err)
	}
	if sel.HasScorer() {
		slog.Warn("whisper engine does not support external scorers, skipping", "path", sel.ScorerPath)
	}
	return &WhisperTranscriber{model: model}, nil
}

// Close releases the whisper model resources.
func (t *WhisperTranscriber) Close() error {
	if t.model != nil {
		return t.model.Close()
	}
	return nil
}

// Transcribe runs speech-to-text over the whole sample buffer. Whisper
// consumes float32 samples, so the int16 buffer is converted first.
func (t *WhisperTranscriber) Transcribe(samples []int16) (string, error) {
	ctx, err := t.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("transcribe: create context: %w", err)
	}

	floats := make([]float32, len(samples))
	for i, s := range samples {
		floats[i] = float32(s) / 32768.0
	}

	if err := ctx.Process(floats, nil, nil, nil); err != nil {
		return "", fmt.Errorf("transcribe: process: %w", err)
	}

	var segments []string
	for {
		seg, err := ctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("transcribe: next segment: %w", err)
		}
		segments = append(segments, seg.Text)
	}

	return strings.TrimSpace(strings.Join(segments, " ")), nil
}
