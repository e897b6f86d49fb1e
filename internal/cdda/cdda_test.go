package cdda_test

import (
	"testing"

	"ripcheck/internal/cdda"
)

func TestDerivedConstants(t *testing.T) {
	if cdda.FramesPerSector != cdda.SampleRate/cdda.SectorsPerSecond {
		t.Fatalf("frames per sector %d does not match sample rate / sectors per second", cdda.FramesPerSector)
	}
	if cdda.BytesPerSector != 2352 {
		t.Fatalf("expected 2352 bytes per sector, got %d", cdda.BytesPerSector)
	}
}

func TestFormatMSF(t *testing.T) {
	cases := []struct {
		sectors int64
		want    string
	}{
		{0, "0:00.00"},
		{74, "0:00.74"},
		{75, "0:01.00"},
		{4500, "1:00.00"},
		{16234, "3:36.34"},
		{330000, "73:20.00"},
	}
	for _, tc := range cases {
		if got := cdda.FormatMSF(tc.sectors); got != tc.want {
			t.Errorf("FormatMSF(%d) = %q, want %q", tc.sectors, got, tc.want)
		}
	}
}
