package config

import (
	"errors"
	"os"
)

// DefaultOutputPath is the file every run writes to.
const DefaultOutputPath = "sine-ass.wav"

// Config holds all application configuration.
type Config struct {
	// Output settings
	OutputPath string

	// Metrics settings
	MetricsFile string

	// Logging settings
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sane defaults.
// None of these settings affect the bytes that are written.
func Load() (*Config, error) {
	cfg := &Config{
		OutputPath: DefaultOutputPath,

		MetricsFile: os.Getenv("WAVGEN_METRICS_FILE"),

		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MetricsEnabled returns true if a metrics textfile should be written.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsFile != ""
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return errors.New("output path must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.LogFormat] {
		return errors.New("LOG_FORMAT must be one of: text, json")
	}

	return nil
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
