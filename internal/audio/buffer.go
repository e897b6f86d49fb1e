package audio

import (
	"encoding/binary"
	"fmt"

	"ripcheck/internal/cdda"
	"ripcheck/internal/faults"
)

// maxTrackFrames caps the declared frame count a loader will allocate for.
// 100 minutes of CDDA is beyond anything a pressed disc can hold, so a
// larger declaration can only come from corrupt metadata.
const maxTrackFrames = 100 * 60 * cdda.SampleRate

// Buffer holds one track's decoded samples as raw bytes, two bytes per
// sample, always in little-endian order regardless of host byte order.
// The AccurateRip and CRC32 algorithms are defined over this exact byte
// layout, so the loader performs the normalization explicitly instead of
// relying on how the decoder lays out integers in memory.
type Buffer struct {
	data []byte
}

func newBuffer(frames int64) (*Buffer, error) {
	if frames < 0 || frames > maxTrackFrames {
		return nil, faults.Wrap(faults.ErrAllocation, "loader", "allocate",
			fmt.Sprintf("declared frame count %d exceeds limit %d", frames, int64(maxTrackFrames)), nil)
	}
	return &Buffer{data: make([]byte, 0, frames*cdda.Channels*cdda.BytesPerSample)}, nil
}

func (b *Buffer) appendSample(v uint16) {
	b.data = binary.LittleEndian.AppendUint16(b.data, v)
}

// Bytes returns the underlying sample bytes. The slice is owned by the
// caller of Load until checksum computation completes; the silence-stripped
// CRC32 pass compacts it in place.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// SampleCount returns the number of 16-bit samples in the buffer.
func (b *Buffer) SampleCount() int {
	return len(b.data) / cdda.BytesPerSample
}

// Frames returns the number of stereo frames in the buffer.
func (b *Buffer) Frames() int64 {
	return int64(b.SampleCount() / cdda.Channels)
}
