// Package audio is the boundary to the external audio decoding libraries.
//
// It probes WAV and FLAC containers, validates that a stream is CDDA
// (16-bit/44.1 kHz/stereo linear PCM), and loads a whole track into a flat
// sample buffer normalized to little-endian byte order. The checksum engine
// consumes that buffer and never touches the decoders directly.
//
// WAV decoding is delegated to github.com/go-audio/wav and FLAC decoding to
// github.com/mewkiz/flac. Containers are recognized by their magic bytes,
// not by file extension.
package audio
