// Package config loads the application configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when no GitHub token is configured.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is not set")

// Config holds everything the application needs at startup.
type Config struct {
	Token string
}

// Load reads a .env file if one exists in the working directory and
// then resolves the configuration from the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}
	return &Config{Token: token}, nil
}
