// Package config loads the timestep command configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/reugn/go-timerange/logger"
	"github.com/reugn/go-timerange/timerange"
)

// Config holds the defaults of the timestep command. Command line flags
// take precedence over these values.
type Config struct {
	// Zone is the IANA name of the location date-times are resolved in.
	Zone string `env:"TIMESTEP_ZONE" envDefault:"Local"`
	// LogLevel is the minimum level of the diagnostic records.
	LogLevel string `env:"TIMESTEP_LOG_LEVEL" envDefault:"info"`
	// Limit caps the number of printed values.
	Limit int `env:"TIMESTEP_LIMIT" envDefault:"1000"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Location returns the configured location.
func (c Config) Location() (*time.Location, error) {
	return timerange.LoadLocation(c.Zone)
}

// Level returns the configured log level, falling back to info when the
// name is not valid. Call Validate to reject such names.
func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}
