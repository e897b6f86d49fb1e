package checksum_test

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"ripcheck/internal/checksum"
)

// frameData builds a little-endian sample buffer from 32-bit frame values.
func frameData(frames ...uint32) []byte {
	data := make([]byte, 0, len(frames)*4)
	for _, f := range frames {
		data = binary.LittleEndian.AppendUint32(data, f)
	}
	return data
}

const skip = 5 * 588

func TestMiddleTrackSumsEveryFrame(t *testing.T) {
	data := frameData(1, 2, 3)
	got := checksum.AccurateRipSum(data, 2, 3)
	// 1*1 + 2*2 + 3*3
	if got.V1 != 14 {
		t.Fatalf("v1 = %d, want 14", got.V1)
	}
	if got.V2 != 14 {
		t.Fatalf("v2 = %d, want 14", got.V2)
	}
}

func TestHighWordAccumulation(t *testing.T) {
	// Frame 0xFFFFFFFF at multiplier 2: product 0x1FFFFFFFE splits into
	// low word 0xFFFFFFFE and high word 1.
	data := frameData(0, 0xFFFFFFFF)
	got := checksum.AccurateRipSum(data, 2, 3)
	if got.V1 != 0xFFFFFFFE {
		t.Fatalf("v1 = %#x, want 0xFFFFFFFE", got.V1)
	}
	if got.V2 != 0xFFFFFFFF {
		t.Fatalf("v2 = %#x, want 0xFFFFFFFF", got.V2)
	}
}

func TestLowWordWrapsSilently(t *testing.T) {
	// Two products of 0x80000000 overflow the low accumulator to zero.
	data := frameData(0x80000000, 0x40000000)
	got := checksum.AccurateRipSum(data, 2, 3)
	if got.V1 != 0 {
		t.Fatalf("v1 = %#x, want 0 after wraparound", got.V1)
	}
}

func TestFirstTrackSkipsLeadIn(t *testing.T) {
	// skip+1 frames of constant sample 0x0001: frame value 0x00010001.
	// As the first track (but not the last), the window is [skip, nframes],
	// so only multipliers skip and skip+1 contribute.
	frames := make([]uint32, skip+1)
	for i := range frames {
		frames[i] = 0x00010001
	}
	got := checksum.AccurateRipSum(frameData(frames...), 1, 2)
	want := uint32(0x00010001 * uint64(skip+skip+1))
	if got.V1 != want {
		t.Fatalf("v1 = %d, want %d", got.V1, want)
	}
	if got.V2 != want {
		t.Fatalf("v2 = %d, want %d", got.V2, want)
	}
}

func TestLastTrackSkipsLeadOut(t *testing.T) {
	// skip+3 frames: as the last track (but not the first) only
	// multipliers 1..3 contribute.
	frames := make([]uint32, skip+3)
	for i := range frames {
		frames[i] = 1
	}
	got := checksum.AccurateRipSum(frameData(frames...), 3, 3)
	if got.V1 != 1+2+3 {
		t.Fatalf("v1 = %d, want 6", got.V1)
	}
}

func TestSingleTrackDiscTrimsBothEnds(t *testing.T) {
	// 2*skip+10 frames, track 1 of 1: window [skip, nframes-skip] keeps
	// multipliers skip..skip+10.
	nframes := 2*skip + 10
	frames := make([]uint32, nframes)
	for i := range frames {
		frames[i] = 1
	}
	got := checksum.AccurateRipSum(frameData(frames...), 1, 1)

	var want uint32
	for m := skip; m <= skip+10; m++ {
		want += uint32(m)
	}
	if got.V1 != want {
		t.Fatalf("v1 = %d, want %d", got.V1, want)
	}
}

func TestShortBufferYieldsEmptyWindow(t *testing.T) {
	// Fewer than 2*skip frames on a single-track disc: the window bounds
	// cross and nothing contributes.
	frames := make([]uint32, 2*skip-1)
	for i := range frames {
		frames[i] = 0xDEADBEEF
	}
	got := checksum.AccurateRipSum(frameData(frames...), 1, 1)
	if got.V1 != 0 || got.V2 != 0 {
		t.Fatalf("expected zero checksums for empty window, got v1=%#x v2=%#x", got.V1, got.V2)
	}
}

func TestEmptyBuffer(t *testing.T) {
	got := checksum.AccurateRipSum(nil, 1, 1)
	if got.V1 != 0 || got.V2 != 0 {
		t.Fatalf("expected zero checksums for empty buffer, got %+v", got)
	}
}

func TestV2MinusV1IsHighWordSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	frames := make([]uint32, 4096)
	for i := range frames {
		frames[i] = rng.Uint32()
	}
	data := frameData(frames...)

	got := checksum.AccurateRipSum(data, 2, 3)

	var wantHi uint32
	for i, f := range frames {
		product := uint64(f) * uint64(i+1)
		wantHi += uint32(product >> 32)
	}
	if got.V2-got.V1 != wantHi {
		t.Fatalf("v2-v1 = %#x, want high word sum %#x", got.V2-got.V1, wantHi)
	}
}

func TestGuardWindowConstantDerivations(t *testing.T) {
	// Two historical derivations of the guard window size: 5 sectors of
	// 588 frames, and 5 sectors of 2352 bytes divided by 4-byte frames.
	if skip != (2352*5)/4 {
		t.Fatalf("guard window derivations disagree: %d vs %d", skip, (2352*5)/4)
	}
}

func TestByteOrderIsLoadBearing(t *testing.T) {
	data := frameData(0x01020304, 0x0A0B0C0D, 0x11223344)
	swapped := make([]byte, len(data))
	for i := 0; i < len(data); i += 2 {
		swapped[i], swapped[i+1] = data[i+1], data[i]
	}

	native := checksum.AccurateRipSum(data, 2, 3)
	foreign := checksum.AccurateRipSum(swapped, 2, 3)
	if native == foreign {
		t.Fatal("byte-swapped buffer produced identical AccurateRip checksums")
	}
}
