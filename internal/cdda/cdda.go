package cdda

import "fmt"

// SampleRate is the CDDA sampling rate in Hz.
const SampleRate = 44100

// Channels is the number of audio channels on a Red Book CD.
const Channels = 2

// BitsPerSample is the resolution of a single CDDA sample.
const BitsPerSample = 16

// BytesPerSample is the storage size of one 16-bit sample.
const BytesPerSample = 2

// FramesPerSector is the number of stereo audio frames in one CDDA sector.
// A frame is one sample per channel; a sector holds 1/75th of a second of
// audio (44100 / 75 = 588).
const FramesPerSector = 588

// SectorsPerSecond is the number of CDDA sectors played per second.
const SectorsPerSecond = 75

// BytesPerSector is the amount of audio data in one sector (2352 bytes).
const BytesPerSector = FramesPerSector * Channels * BytesPerSample

// LeadInSectors is the fixed length of the lead-in area. LBA addresses
// include it, LSN addresses do not.
const LeadInSectors = 150

// FormatMSF renders a sector count as a mm:ss.ff time string, matching the
// track listing format used by CD ripping tools.
func FormatMSF(sectors int64) string {
	minutes := sectors / SectorsPerSecond / 60
	seconds := sectors / SectorsPerSecond % 60
	frames := sectors % SectorsPerSecond
	return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, frames)
}
