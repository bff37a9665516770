// Package pipeline runs the transcription pipeline: locate model
// artifacts, construct the engine, decode the audio file, resample to
// the engine's rate, and run recognition. Every stage runs once; the
// first failing stage aborts the run with a typed error.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chaz8081/gostt-file/internal/audio"
	"github.com/chaz8081/gostt-file/internal/config"
	"github.com/chaz8081/gostt-file/internal/models"
	"github.com/chaz8081/gostt-file/internal/transcribe"
)

// Error kinds, matchable with errors.Is. Nothing is recovered or
// retried; the kinds exist so callers can report failures precisely.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrModelLoad     = errors.New("model load error")
	ErrAudioFormat   = errors.New("audio format error")
	ErrInference     = errors.New("inference error")
)

// Pipeline transcribes one audio file with models from one directory.
type Pipeline struct {
	cfg *config.Config

	// NewTranscriber constructs the recognition engine for a model
	// selection. Overridable in tests.
	NewTranscriber func(cfg *config.Config, sel models.Selection) (transcribe.Transcriber, error)
}

// New creates a Pipeline using the engine configured in cfg.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:            cfg,
		NewTranscriber: transcribe.New,
	}
}

// Run executes the pipeline once and returns the transcript. The stages
// are strictly sequential: model location, engine construction, decode,
// resample, recognition.
func (p *Pipeline) Run(modelDir, audioPath string) (string, error) {
	sel, err := models.Locate(modelDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	slog.Debug("model selected", "model", sel.ModelPath, "scorer", sel.ScorerPath)

	tr, err := p.NewTranscriber(p.cfg, sel)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelLoad, err)
	}
	defer tr.Close()

	stream, err := audio.DecodeFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAudioFormat, err)
	}
	slog.Debug("audio decoded",
		"samples", len(stream.Samples),
		"rate", stream.SampleRate,
		"seconds", stream.Duration())

	samples := audio.Resample(stream.Samples, stream.SampleRate, p.cfg.TargetSampleRate)

	text, err := tr.Transcribe(samples)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInference, err)
	}
	return text, nil
}
