package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the dashboard.
type Config struct {
	AppEnv          string `env:"APP_ENV" envDefault:"local"`
	Port            int    `env:"PORT" envDefault:"8080"`
	RatingsCSV      string `env:"RATINGS_CSV" envDefault:"srs_24_07.csv"`
	TeamMetadataCSV string `env:"TEAM_METADATA_CSV" envDefault:"team_metadata.csv"`
	BearerToken     string `env:"API_BEARER_TOKEN"`
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // .env file is optional

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 {
		return cfg, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}
	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
