// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
type Config struct {
	// DBPath is where the save database lives.
	DBPath string `env:"COVERLIFE_DB_PATH" envDefault:"coverlife.db"`

	// Seed drives all simulation randomness. Zero means derive one from
	// the entropy source.
	Seed int64 `env:"COVERLIFE_SEED" envDefault:"0"`

	// Speed is the real-time multiplier (1, 2, 5 or 10).
	Speed int `env:"COVERLIFE_SPEED" envDefault:"1"`

	PlayerName string `env:"COVERLIFE_PLAYER_NAME" envDefault:"Dancer"`

	// Days caps a headless run; 0 runs to the five-year horizon.
	Days int `env:"COVERLIFE_DAYS" envDefault:"0"`

	// RandomOrgKey enables the external entropy pool for seed material.
	RandomOrgKey string `env:"COVERLIFE_RANDOM_ORG_KEY"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
