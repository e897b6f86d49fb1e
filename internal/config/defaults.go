package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Cache: Cache{
			Enabled: true,
			Dir:     defaultCacheDir(),
		},
		Verification: Verification{
			Permissive:      false,
			ExcludePatterns: []string{"00*.wav", "00*.flac"},
		},
	}
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "ripcheck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/ripcheck"
	}
	return filepath.Join(home, ".cache", "ripcheck")
}
