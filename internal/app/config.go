package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the data directory, e.g. $HOME/.userstore.
	Home string `env:"USERSTORE_HOME"`
	// File is the dataset filename inside Home.
	File string `env:"USERSTORE_FILE" envDefault:"users.json"`
	// Debug enables verbose logging.
	Debug bool `env:"USERSTORE_DEBUG"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
