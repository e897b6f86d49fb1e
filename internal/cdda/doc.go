// Package cdda defines Red Book audio CD constants shared across the
// checksum engine, TOC handling, and disc ID calculations.
//
// Everything here is a compile-time constant: the CDDA format is fixed by
// the standard and must never be configurable, because the AccurateRip and
// CRC32 algorithms are only defined over 16-bit/44.1 kHz/stereo PCM laid
// out in 588-frame sectors.
package cdda
