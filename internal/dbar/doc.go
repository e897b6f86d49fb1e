// Package dbar decodes AccurateRip dBAR response files: the binary blobs
// the database serves per disc, holding one response block per known
// pressing. It also builds the checksum lookup index verification runs
// against.
package dbar
