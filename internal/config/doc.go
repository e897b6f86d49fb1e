// Package config loads and validates ripcheck's TOML configuration. It
// resolves the config file location, applies defaults for missing
// settings, and expands path values before other packages see them.
package config
