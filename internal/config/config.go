// Package config reads runtime configuration from the environment,
// with a .env file autoloaded when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// DBPath overrides the default SQLite database location.
	DBPath string
	// TutorID selects whose schedule and roster to operate on.
	TutorID string
	// DayTemplatePath points at a custom YAML day template; empty
	// means the built-in template.
	DayTemplatePath string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first if
// present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:          os.Getenv("PHONICS_DB"),
		TutorID:         getEnv("PHONICS_TUTOR", "demo-tutor"),
		DayTemplatePath: os.Getenv("PHONICS_DAY_TEMPLATE"),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
