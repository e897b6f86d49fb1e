package checksum_test

import (
	"bytes"
	"hash/crc32"
	"testing"

	"ripcheck/internal/checksum"
)

func TestCopyCRC32MatchesZlib(t *testing.T) {
	data := []byte("123456789")
	// The canonical CRC-32/IEEE check value for "123456789".
	if got := checksum.CopyCRC32(data); got != 0xCBF43926 {
		t.Fatalf("crc32 = %#x, want 0xCBF43926", got)
	}
}

func TestCopyCRC32EmptyBuffer(t *testing.T) {
	if got := checksum.CopyCRC32(nil); got != 0 {
		t.Fatalf("crc32 of empty buffer = %#x, want 0", got)
	}
}

func TestCopyCRC32SensitiveToByteOrder(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	swapped := []byte{0x02, 0x01, 0x04, 0x03}
	if checksum.CopyCRC32(data) == checksum.CopyCRC32(swapped) {
		t.Fatal("byte-swapped buffer produced identical CRC32")
	}
}

func TestStripSilenceCompactsInOrder(t *testing.T) {
	// Samples: 1, 0, 2, 0, 0, 3 (little-endian 16-bit).
	data := []byte{1, 0, 0, 0, 2, 0, 0, 0, 0, 0, 3, 0}
	got := checksum.StripSilence(data)
	want := []byte{1, 0, 2, 0, 3, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("stripped = %v, want %v", got, want)
	}
}

func TestStripSilenceKeepsHalfZeroSamples(t *testing.T) {
	// 0x0100 and 0x0001 both have one zero byte but are not silent.
	data := []byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00}
	got := checksum.StripSilence(data)
	want := []byte{0x00, 0x01, 0x01, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("stripped = %v, want %v", got, want)
	}
}

func TestStripSilenceAllSilent(t *testing.T) {
	data := make([]byte, 64)
	if got := checksum.StripSilence(data); len(got) != 0 {
		t.Fatalf("expected empty result, got %d bytes", len(got))
	}
}

func TestSkipSilenceCRCInvariantUnderSilenceInsertion(t *testing.T) {
	voiced := []byte{5, 0, 0x34, 0x12, 0xFF, 0xFF, 7, 1}

	padded := make([]byte, 0, len(voiced)+12)
	padded = append(padded, 0, 0, 0, 0) // leading silence
	padded = append(padded, voiced[:4]...)
	padded = append(padded, 0, 0) // silence mid-stream
	padded = append(padded, voiced[4:]...)
	padded = append(padded, 0, 0, 0, 0, 0, 0) // trailing silence

	wantCRC := crc32.ChecksumIEEE(voiced)
	if got := checksum.CopyCRC32(checksum.StripSilence(padded)); got != wantCRC {
		t.Fatalf("silence-stripped crc = %#x, want %#x", got, wantCRC)
	}
}
