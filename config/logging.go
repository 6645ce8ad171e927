package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines the log verbosity.
type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown level %q", c.Level)
	}
	return nil
}
