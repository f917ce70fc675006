// Package config loads and validates the pipeline configuration from the
// environment, with optional .env support for local runs.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	InputSource   string `env:"INPUT_SOURCE"`
	LexiconPath   string `env:"LEXICON_PATH"`
	StopwordsPath string `env:"STOPWORDS_PATH"`

	TopK          int    `env:"TOP_K" default:"1000"`
	MinWordCount  int    `env:"MIN_WORD_COUNT" default:"3"`
	UnknownPolicy string `env:"UNKNOWN_WORD_POLICY" default:"zero"`
	VaderCompare  bool   `env:"VADER_COMPARE" default:"false"`

	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" default:"30s"`

	OutputPNG    string `env:"OUTPUT_PNG"`
	CloudWidth   int    `env:"CLOUD_WIDTH" default:"1500"`
	CloudHeight  int    `env:"CLOUD_HEIGHT" default:"1000"`
	CloudMaxFont int    `env:"CLOUD_MAX_FONT" default:"96"`
	CloudSeed    int64  `env:"CLOUD_SEED" default:"42"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"INPUT_SOURCE": cfg.InputSource,
		"LEXICON_PATH": cfg.LexiconPath,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.TopK < 1 {
		return fmt.Errorf("TOP_K must be at least 1, got %d", cfg.TopK)
	}
	if cfg.MinWordCount < 1 {
		return fmt.Errorf("MIN_WORD_COUNT must be at least 1, got %d", cfg.MinWordCount)
	}

	switch cfg.UnknownPolicy {
	case "zero", "exclude":
	default:
		return fmt.Errorf("UNKNOWN_WORD_POLICY must be %q or %q, got %q", "zero", "exclude", cfg.UnknownPolicy)
	}

	if cfg.OutputPNG != "" {
		if cfg.CloudWidth < 1 || cfg.CloudHeight < 1 {
			return fmt.Errorf("CLOUD_WIDTH and CLOUD_HEIGHT must be positive, got %dx%d", cfg.CloudWidth, cfg.CloudHeight)
		}
		if cfg.CloudMaxFont < 1 {
			return fmt.Errorf("CLOUD_MAX_FONT must be positive, got %d", cfg.CloudMaxFont)
		}
	}

	return nil
}
