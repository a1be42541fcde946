// Package config loads runtime settings from KUKU_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/kuku/internal/drill"
)

// Config holds the drill defaults and ambient settings.
type Config struct {
	// Env selects the logger preset: "production" or anything else for development.
	Env string `env:"KUKU_ENV" envDefault:"local"`

	// From and To are the default dan range offered on the start screen.
	From int `env:"KUKU_FROM" envDefault:"1"`
	To   int `env:"KUKU_TO" envDefault:"9"`

	// Chant overlays the kuku chant readings on questions and answers.
	Chant bool `env:"KUKU_CHANT" envDefault:"true"`

	// Seed fixes the shuffle order. Zero picks a random seed per run.
	Seed uint64 `env:"KUKU_SEED" envDefault:"0"`

	// LogFile receives structured logs. Empty disables logging.
	LogFile string `env:"KUKU_LOG_FILE"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Range validates the configured default range.
func (c *Config) Range() (drill.Range, error) {
	return drill.NewRange(c.From, c.To)
}

// IsProduction reports whether the production logger preset is selected.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
