// Package checksum computes the disc-verification checksums of ripped CD
// audio tracks: both AccurateRip variants and the copy CRC32, including the
// silence-stripped CRC32 used to detect rips that differ only by padding.
//
// The arithmetic is order-, overflow-, and byte-order-sensitive: results
// must match the AccurateRip reference database bit for bit, and a wrong
// window bound or a missed 32-bit wraparound produces checksums that simply
// never match, with no internal way to detect the bug. All input therefore
// arrives as a little-endian sample buffer produced by the audio package,
// and every accumulation wraps modulo 2^32 on purpose.
package checksum
