package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.Watch.SettleSeconds < 1 {
		return errors.New("watch.settle_seconds must be at least 1")
	}
	if c.Paths.DestDir == "" {
		return errors.New("paths.dest_dir must be set")
	}
	return nil
}
