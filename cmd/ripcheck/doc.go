// Package main hosts the ripcheck CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces checksum computation, disc ID
// derivation, dBAR inspection, rip verification and cache maintenance.
// It centralizes configuration resolution and logger setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main
