package dbar_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"ripcheck/internal/dbar"
)

func appendHeader(data []byte, tracks uint8, id1, id2, freedb uint32) []byte {
	data = append(data, tracks)
	data = binary.LittleEndian.AppendUint32(data, id1)
	data = binary.LittleEndian.AppendUint32(data, id2)
	return binary.LittleEndian.AppendUint32(data, freedb)
}

func appendTrack(data []byte, confidence uint8, v1, v2 uint32) []byte {
	data = append(data, confidence)
	data = binary.LittleEndian.AppendUint32(data, v1)
	return binary.LittleEndian.AppendUint32(data, v2)
}

// twoResponses builds a well formed blob for a two track disc with two
// response blocks.
func twoResponses() []byte {
	var data []byte
	data = appendHeader(data, 2, 0x0002964e, 0x0008d45b, 0x1d04f003)
	data = appendTrack(data, 12, 0x11111111, 0x22222222)
	data = appendTrack(data, 12, 0x33333333, 0x44444444)
	data = appendHeader(data, 2, 0x0002964e, 0x0008d45b, 0x1d04f003)
	data = appendTrack(data, 3, 0x55555555, 0x66666666)
	data = appendTrack(data, 0, 0x77777777, 0x88888888)
	return data
}

func TestParse(t *testing.T) {
	responses, err := dbar.Parse(twoResponses())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}

	first := responses[0]
	if first.Header.TrackCount != 2 || first.Header.ID1 != 0x0002964e {
		t.Fatalf("unexpected header: %+v", first.Header)
	}
	if len(first.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(first.Tracks))
	}
	if got := first.Tracks[1]; got.Confidence != 12 || got.V1 != 0x33333333 || got.V2 != 0x44444444 {
		t.Fatalf("unexpected track record: %+v", got)
	}
}

func TestParseRejectsCorruptData(t *testing.T) {
	valid := twoResponses()

	cases := map[string][]byte{
		"empty":            nil,
		"truncated header": valid[:7],
		"truncated track":  valid[:len(valid)-4],
		"zero tracks":      appendHeader(nil, 0, 1, 2, 3),
		"mismatched headers": append(append([]byte{}, valid...),
			appendTrack(appendTrack(appendHeader(nil, 2, 9, 9, 9), 1, 1, 1), 1, 1, 1)...),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := dbar.Parse(data); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dBAR-002.bin")
	if err := os.WriteFile(path, twoResponses(), 0o644); err != nil {
		t.Fatalf("failed to write response file: %v", err)
	}
	responses, err := dbar.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
}

func TestVerify(t *testing.T) {
	responses, err := dbar.Parse(twoResponses())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := dbar.Verify(responses, 2, 0x0002964e, 0x0008d45b, 0x1d04f003); err != nil {
		t.Fatalf("expected matching disc to verify, got %v", err)
	}
	if err := dbar.Verify(responses, 2, 1, 2, 3); err == nil {
		t.Fatal("expected mismatched disc IDs to fail verification")
	}
	if err := dbar.Verify(nil, 2, 1, 2, 3); err == nil {
		t.Fatal("expected empty response list to fail verification")
	}
}

func TestBuildIndex(t *testing.T) {
	responses, err := dbar.Parse(twoResponses())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	index := dbar.BuildIndex(responses)

	m, ok := index.Find(1, 0x22222222)
	if !ok {
		t.Fatal("expected track 1 v2 checksum in the index")
	}
	if m.Confidence != 12 || m.Version != 2 || m.Response != 1 {
		t.Fatalf("unexpected match: %+v", m)
	}

	m, ok = index.Find(1, 0x55555555)
	if !ok {
		t.Fatal("expected track 1 checksum from the second response")
	}
	if m.Response != 2 || m.Version != 1 || m.Confidence != 3 {
		t.Fatalf("unexpected match: %+v", m)
	}

	if _, ok := index.Find(2, 0x99999999); ok {
		t.Fatal("did not expect an unknown checksum to match")
	}
}

func TestBuildIndexSkipsZeroRecords(t *testing.T) {
	responses, err := dbar.Parse(twoResponses())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	index := dbar.BuildIndex(responses)

	// The second response's track 2 record has zero confidence.
	if _, ok := index.Find(2, 0x77777777); ok {
		t.Fatal("expected zero confidence record to be left out")
	}

	var zero []byte
	zero = appendHeader(zero, 1, 1, 2, 3)
	zero = appendTrack(zero, 5, 0, 0xabcdef01)
	responses, err = dbar.Parse(zero)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	index = dbar.BuildIndex(responses)
	if _, ok := index.Find(1, 0); ok {
		t.Fatal("expected zero checksum to be left out")
	}
	if _, ok := index.Find(1, 0xabcdef01); !ok {
		t.Fatal("expected nonzero checksum to be indexed")
	}
}
