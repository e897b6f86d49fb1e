// Package verify checks a set of ripped audio files against AccurateRip
// database responses: it orders and filters the files, sanity checks them
// against the disc TOC, computes their checksums and reports a per-track
// and per-disc verdict.
package verify
