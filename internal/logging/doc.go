// Package logging assembles the structured slog loggers used across
// ripcheck.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes attr helpers so every component emits records with the same
// shape. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
package logging
