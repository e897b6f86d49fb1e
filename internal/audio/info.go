package audio

import (
	"fmt"

	"ripcheck/internal/cdda"
)

// Container identifies the audio file container format.
type Container string

const (
	ContainerWAV  Container = "wav"
	ContainerFLAC Container = "flac"
)

// Info describes decoded stream metadata as declared by the container.
type Info struct {
	Container     Container
	Channels      int
	SampleRate    int
	BitsPerSample int
	// LinearPCM is false for WAV sub-formats other than integer PCM
	// (IEEE float, ADPCM, mu-law). FLAC is always linear PCM.
	LinearPCM bool
	// Frames is the declared number of audio frames (one sample per
	// channel). The loader verifies the stream actually delivers this
	// many frames.
	Frames int64
}

// IsCDDA reports whether the stream matches Red Book audio constraints.
// Only such streams may be loaded: checksums of anything else would be
// arithmetically valid but meaningless, so the check gates all loading.
func (i Info) IsCDDA() bool {
	switch i.Container {
	case ContainerWAV, ContainerFLAC:
	default:
		return false
	}
	return i.LinearPCM &&
		i.Channels == cdda.Channels &&
		i.SampleRate == cdda.SampleRate &&
		i.BitsPerSample == cdda.BitsPerSample
}

// Describe returns a short human-readable stream description for error
// messages and logs.
func (i Info) Describe() string {
	return fmt.Sprintf("%s %dch %dHz %dbit", i.Container, i.Channels, i.SampleRate, i.BitsPerSample)
}
