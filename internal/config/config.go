// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/zapponejosh/koyomi/internal/holiday"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Generation settings
	TargetYear int    // Calendar year to generate pages for
	OutputDir  string // Directory the SVG files are written to
	HolidayURL string // Holiday dataset endpoint

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// DefaultTargetYear is used when TARGET_YEAR is not set.
const DefaultTargetYear = 2026

// Load reads configuration from environment variables.
// A .env file is loaded first if present (no-op otherwise).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.TargetYear = getEnvInt("TARGET_YEAR", DefaultTargetYear)
	cfg.OutputDir = getEnv("OUTPUT_DIR", fmt.Sprintf("cal_svgs_%d", cfg.TargetYear))
	cfg.HolidayURL = getEnv("HOLIDAY_URL", holiday.DefaultURL)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// The holiday dataset only covers years near the present; a wildly
	// out-of-range year is almost certainly a typo.
	if c.TargetYear < 1950 || c.TargetYear > 2100 {
		errs = append(errs, fmt.Errorf("TARGET_YEAR must be between 1950 and 2100, got %d", c.TargetYear))
	}

	if c.OutputDir == "" {
		errs = append(errs, errors.New("OUTPUT_DIR is required"))
	}

	if c.HolidayURL == "" {
		errs = append(errs, errors.New("HOLIDAY_URL is required"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
