package main

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateHome points HOME and the cache base at a fresh temp directory so
// commands never pick up a developer's real configuration.
func isolateHome(t *testing.T) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	return home
}

// writeHomeConfig places a config file where commands look for it by
// default, under the isolated home.
func writeHomeConfig(t *testing.T, home, content string) string {
	t.Helper()

	path := filepath.Join(home, ".config", "ripcheck", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
