// Package config defines the tournament tool configuration and its loader.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - External errors are wrapped with this package's sentinel errors.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Roster is the path of the YAML roster to rank. Empty selects the
	// built-in sample roster.
	Roster string `koanf:"roster"`

	// Top limits how many standings are shown; 0 shows all.
	Top int `koanf:"top"`

	// ApplySanctions passes each competitor's disqualification flag and
	// penalty points to the scorer when ranking.
	ApplySanctions bool `koanf:"apply_sanctions"`

	// MetricsFile, when set, receives a Prometheus text snapshot of the
	// ranking metrics after each command.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Roster:         "",
		Top:            0,
		ApplySanctions: false,
		MetricsFile:    "",
	}
}
