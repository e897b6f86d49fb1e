package audio

import (
	"fmt"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"ripcheck/internal/cdda"
	"ripcheck/internal/faults"
)

// wavFormatPCM is the WAVE format tag for integer linear PCM.
const wavFormatPCM = 1

// wavChunkFrames sizes the intermediate decode buffer: 64 sectors of audio
// per PCMBuffer call keeps allocations flat without holding two copies of
// the track in memory.
const wavChunkFrames = 64 * cdda.FramesPerSector

func loadWAV(path string, withSamples bool) (Info, *Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, nil, faults.Wrap(faults.ErrIO, "audio", "open", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Info{}, nil, faults.Wrap(faults.ErrIO, "audio", "probe", "read wav header", err)
	}
	if !dec.IsValidFile() {
		return Info{}, nil, faults.Wrap(faults.ErrUnsupportedFormat, "audio", "probe", "not a valid wav file", nil)
	}

	info := Info{
		Container:     ContainerWAV,
		Channels:      int(dec.NumChans),
		SampleRate:    int(dec.SampleRate),
		BitsPerSample: int(dec.BitDepth),
		LinearPCM:     dec.WavAudioFormat == wavFormatPCM,
	}

	if err := dec.FwdToPCM(); err != nil {
		return Info{}, nil, faults.Wrap(faults.ErrIO, "audio", "probe", "locate data chunk", err)
	}
	bytesPerFrame := int64(info.Channels) * int64(info.BitsPerSample/8)
	if bytesPerFrame > 0 {
		info.Frames = int64(dec.PCMSize) / bytesPerFrame
	}

	if !withSamples {
		return info, nil, nil
	}
	if !info.IsCDDA() {
		return info, nil, faults.Wrap(faults.ErrUnsupportedFormat, "audio", "validate", info.Describe(), nil)
	}

	buf, err := newBuffer(info.Frames)
	if err != nil {
		return info, nil, err
	}

	chunk := &gaudio.IntBuffer{
		Format: &gaudio.Format{NumChannels: info.Channels, SampleRate: info.SampleRate},
		Data:   make([]int, wavChunkFrames*cdda.Channels),
	}
	for {
		n, err := dec.PCMBuffer(chunk)
		if err != nil {
			return info, nil, faults.Wrap(faults.ErrIO, "audio", "decode", "read pcm samples", err)
		}
		if n == 0 {
			break
		}
		for _, v := range chunk.Data[:n] {
			buf.appendSample(uint16(int16(v)))
		}
	}

	if buf.Frames() != info.Frames {
		return info, nil, faults.Wrap(faults.ErrIO, "audio", "decode",
			fmt.Sprintf("stream truncated: read %d frames, header declares %d", buf.Frames(), info.Frames), nil)
	}
	return info, buf, nil
}
