package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/chaz8081/gostt-file/internal/config"
	"github.com/chaz8081/gostt-file/internal/models"
	"github.com/chaz8081/gostt-file/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/gostt-file/config.yaml)")
	engine := flag.String("engine", "", "recognition engine override (deepspeech, whisper)")
	download := flag.Bool("download", false, "download the DeepSpeech model and scorer into MODEL_DIR first")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	modelDir, audioPath := flag.Arg(0), flag.Arg(1)

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *engine != "" {
		cfg.Engine = *engine
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}
	setupLogging(cfg.LogLevel)

	if *download {
		log.Println("Downloading model files...")
		if err := models.DownloadDeepSpeech(modelDir); err != nil {
			log.Fatalf("model download failed: %v", err)
		}
	}

	printBanner(cfg, modelDir, audioPath)

	text, err := pipeline.New(cfg).Run(modelDir, audioPath)
	if err != nil {
		log.Fatalf("%v%s", err, hint(err))
	}

	// The transcript is the only thing written to stdout.
	fmt.Println(text)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gostt-file [flags] MODEL_DIR AUDIO_FILE\n\n")
	fmt.Fprintf(os.Stderr, "Transcribes a mono WAV file using the model found in MODEL_DIR.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

// loadConfig loads the config from the specified path, or falls back to
// the default config path, or uses built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	// Try default config path
	defaultPath := config.DefaultConfigPath()
	if _, err := os.Stat(defaultPath); err == nil {
		cfg, err := config.Load(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", defaultPath, err)
		}
		log.Printf("Config loaded from %s", defaultPath)
		return cfg, nil
	}

	// No config file, use defaults
	return config.Default(), nil
}

func setupLogging(level string) {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	slog.SetLogLoggerLevel(levels[level])
}

// printBanner logs the run configuration summary. It goes through the
// logger so stdout stays reserved for the transcript.
func printBanner(cfg *config.Config, modelDir, audioPath string) {
	log.Println("=== gostt-file ===")
	log.Printf("  Models: %s", modelDir)
	log.Printf("  Audio:  %s", audioPath)
	log.Printf("  Engine: %s @ %dHz", cfg.Engine, cfg.TargetSampleRate)
	log.Println("==================")
}

// hint appends remediation guidance for known failure kinds.
func hint(err error) string {
	switch {
	case errors.Is(err, pipeline.ErrModelLoad):
		return "\n\nCheck that MODEL_DIR contains a .pbmm, .pb or .tflite model file.\nRun with -download to fetch the published DeepSpeech model."
	case errors.Is(err, pipeline.ErrAudioFormat):
		return "\n\nOnly mono 16-bit WAV files are supported."
	default:
		return ""
	}
}
