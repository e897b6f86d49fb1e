package audio

import (
	"bytes"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"ripcheck/internal/faults"
)

var (
	magicRIFF = []byte("RIFF")
	magicWAVE = []byte("WAVE")
	magicFLAC = []byte("fLaC")
)

// sniff identifies the container by magic bytes. Extension is deliberately
// ignored: rippers produce files like track01.cdda.wav and mislabeled
// extensions are common.
func sniff(path string) (Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", faults.Wrap(faults.ErrIO, "audio", "open", path, err)
	}
	defer f.Close()

	header := make([]byte, 12)
	n, _ := io.ReadFull(f, header)
	header = header[:n]

	switch {
	case len(header) >= 12 && bytes.Equal(header[:4], magicRIFF) && bytes.Equal(header[8:12], magicWAVE):
		return ContainerWAV, nil
	case len(header) >= 4 && bytes.Equal(header[:4], magicFLAC):
		return ContainerFLAC, nil
	default:
		return "", faults.Wrap(faults.ErrUnsupportedFormat, "audio", "probe", "file is neither wav nor flac", nil)
	}
}

func load(path string, withSamples bool) (Info, *Buffer, error) {
	container, err := sniff(path)
	if err != nil {
		return Info{}, nil, err
	}
	switch container {
	case ContainerFLAC:
		return loadFLAC(path, withSamples)
	default:
		return loadWAV(path, withSamples)
	}
}

// Probe reads stream metadata without decoding any samples.
func Probe(path string) (Info, error) {
	info, _, err := load(path, false)
	return info, err
}

// Load validates the stream against CDDA constraints and decodes the whole
// track into a little-endian sample buffer. The file handle is released
// before Load returns, so no OS resource outlives the call.
func Load(path string) (Info, *Buffer, error) {
	return load(path, true)
}

// FrameCount returns the declared number of audio frames in a supported
// file without computing checksums. Callers use it to compare track lengths
// against disc TOC data.
func FrameCount(path string) (int64, error) {
	info, err := Probe(path)
	if err != nil {
		return 0, err
	}
	if !info.IsCDDA() {
		return 0, faults.Wrap(faults.ErrUnsupportedFormat, "audio", "validate", info.Describe(), nil)
	}
	return info.Frames, nil
}

// decoderModules are the module paths of the external decoding libraries,
// reported by DecoderVersion for diagnostics.
var decoderModules = []string{
	"github.com/go-audio/wav",
	"github.com/mewkiz/flac",
}

// DecoderVersion identifies the decoding libraries in use, including their
// module versions when build info is available.
func DecoderVersion() string {
	versions := make(map[string]string, len(decoderModules))
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			versions[dep.Path] = dep.Version
		}
	}

	parts := make([]string, 0, len(decoderModules))
	for _, path := range decoderModules {
		name := path[strings.Index(path, "/")+1:]
		if v, ok := versions[path]; ok && v != "" && v != "(devel)" {
			parts = append(parts, name+" "+v)
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
