package experiments

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the experiment suite settings, loaded from the environment.
type Config struct {
	NumSamples int    `env:"HOG_NUM_SAMPLES" envDefault:"1000"`
	NumGames   int    `env:"HOG_NUM_GAMES" envDefault:"1000"`
	Seed       uint64 `env:"HOG_SEED" envDefault:"1"`
	OutputDir  string `env:"HOG_OUTPUT_DIR" envDefault:"experiments"`
}

// LoadConfig reads the experiment configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
