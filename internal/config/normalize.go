package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeVerification()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeCache() error {
	c.Cache.Dir = strings.TrimSpace(c.Cache.Dir)
	if c.Cache.Dir == "" {
		c.Cache.Dir = defaultCacheDir()
	}
	expanded, err := expandPath(c.Cache.Dir)
	if err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	c.Cache.Dir = expanded
	return nil
}

func (c *Config) normalizeVerification() {
	patterns := make([]string, 0, len(c.Verification.ExcludePatterns))
	for _, pattern := range c.Verification.ExcludePatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern != "" {
			patterns = append(patterns, pattern)
		}
	}
	c.Verification.ExcludePatterns = patterns
}
