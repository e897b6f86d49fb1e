package config

import (
	"fmt"
	"path/filepath"
)

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	for _, pattern := range c.Verification.ExcludePatterns {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("verification.exclude_patterns: bad pattern %q: %w", pattern, err)
		}
	}

	return nil
}
