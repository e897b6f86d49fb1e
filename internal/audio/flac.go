package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"ripcheck/internal/faults"
)

func loadFLAC(path string, withSamples bool) (Info, *Buffer, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return Info{}, nil, faults.Wrap(faults.ErrIO, "audio", "open", path, err)
	}
	defer stream.Close()

	si := stream.Info
	info := Info{
		Container:     ContainerFLAC,
		Channels:      int(si.NChannels),
		SampleRate:    int(si.SampleRate),
		BitsPerSample: int(si.BitsPerSample),
		LinearPCM:     true,
		Frames:        int64(si.NSamples),
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

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return info, nil, faults.Wrap(faults.ErrIO, "audio", "decode", "parse flac frame", err)
		}
		if len(frame.Subframes) != info.Channels {
			return info, nil, faults.Wrap(faults.ErrIO, "audio", "decode",
				fmt.Sprintf("flac frame has %d subframes, expected %d", len(frame.Subframes), info.Channels), nil)
		}
		left := frame.Subframes[0].Samples
		right := frame.Subframes[1].Samples
		if len(left) != len(right) {
			return info, nil, faults.Wrap(faults.ErrIO, "audio", "decode", "flac channels have unequal sample counts", nil)
		}
		for i := range left {
			buf.appendSample(uint16(int16(left[i])))
			buf.appendSample(uint16(int16(right[i])))
		}
	}

	if buf.Frames() != info.Frames {
		return info, nil, faults.Wrap(faults.ErrIO, "audio", "decode",
			fmt.Sprintf("stream truncated: read %d frames, streaminfo declares %d", buf.Frames(), info.Frames), nil)
	}
	return info, buf, nil
}
