package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Engine selects the recognition backend: "deepspeech" or "whisper".
	Engine string `yaml:"engine"`
	// TargetSampleRate is the rate the engine's model was trained on.
	// Decoded audio is resampled to this rate before recognition.
	TargetSampleRate int    `yaml:"target_sample_rate"`
	LogLevel         string `yaml:"log_level"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gostt-file")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Engine:           "deepspeech",
		TargetSampleRate: 16000,
		LogLevel:         "info",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	switch c.Engine {
	case "deepspeech", "whisper":
	default:
		return fmt.Errorf("engine must be \"deepspeech\" or \"whisper\", got %q", c.Engine)
	}

	if c.TargetSampleRate <= 0 {
		return fmt.Errorf("target_sample_rate must be > 0")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}
