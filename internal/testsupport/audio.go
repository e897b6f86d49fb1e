package testsupport

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WriteWAV writes a minimal RIFF/WAVE file holding the provided 16-bit
// samples with arbitrary stream parameters. Tests use non-CDDA parameters
// to exercise format validation.
func WriteWAV(t testing.TB, path string, samples []int16, sampleRate, channels, bits int) {
	t.Helper()

	bytesPerSample := bits / 8
	dataLen := len(samples) * bytesPerSample
	blockAlign := channels * bytesPerSample
	byteRate := sampleRate * blockAlign

	buf := make([]byte, 0, 44+dataLen)
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+dataLen))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // integer PCM
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(blockAlign))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(bits))
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(dataLen))
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCDDAWAV writes a WAV file with Red Book stream parameters.
func WriteCDDAWAV(t testing.TB, path string, samples []int16) {
	t.Helper()
	WriteWAV(t, path, samples, 44100, 2, 16)
}

// ConstantSamples returns frames*2 interleaved samples all set to value.
func ConstantSamples(frames int, value int16) []int16 {
	samples := make([]int16, frames*2)
	for i := range samples {
		samples[i] = value
	}
	return samples
}
