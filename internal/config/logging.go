package config

import (
	"fmt"
	"slices"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

func (c *LoggingConfig) validate() error {
	if !slices.Contains(ValidLogLevels, c.Level) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("invalid logging.format: %s (valid: console, json)", c.Format)
	}
	return nil
}
