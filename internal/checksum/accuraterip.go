package checksum

import (
	"encoding/binary"

	"ripcheck/internal/cdda"
)

// skipFrames is the guard window excluded from AccurateRip summation at
// disc boundaries: 5 CDDA sectors of 588 stereo frames each. Extraction
// engines commonly disagree about the lead-in and lead-out regions, so the
// reference algorithm leaves them out for the first and last track.
const skipFrames = 5 * cdda.FramesPerSector

// AccurateRip holds both checksum variants produced by one accumulation
// pass. V2 differs from V1 by the accumulated high halves of the products,
// which makes it sensitive to sample offsets V1 cannot see.
type AccurateRip struct {
	V1 uint32
	V2 uint32
}

// AccurateRipSum computes the AccurateRip checksums over raw little-endian
// sample bytes. Consecutive sample pairs form 32-bit frames; each frame is
// weighted by its 1-based absolute position. The multiplier advances for
// every frame whether or not the frame falls inside the summation window,
// and all accumulation wraps modulo 2^32, exactly as the reference
// algorithm requires.
func AccurateRipSum(data []byte, track, totalTracks int) AccurateRip {
	nframes := int64(len(data) / 4)

	var sumFrom int64
	if track == 1 {
		sumFrom += skipFrames
	}
	sumTo := nframes
	if track == totalTracks {
		// May legitimately go below sumFrom (or zero) for buffers shorter
		// than the guard windows: the window is then empty and both
		// checksums are zero.
		sumTo -= skipFrames
	}

	var csumLo, csumHi uint32
	for i := int64(0); i < nframes; i++ {
		multiplier := i + 1
		if multiplier < sumFrom || multiplier > sumTo {
			continue
		}
		frame := uint64(binary.LittleEndian.Uint32(data[i*4:]))
		product := frame * uint64(multiplier)
		csumHi += uint32(product >> 32)
		csumLo += uint32(product)
	}

	return AccurateRip{V1: csumLo, V2: csumLo + csumHi}
}
