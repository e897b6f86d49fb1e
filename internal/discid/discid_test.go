package discid_test

import (
	"testing"

	"ripcheck/internal/discid"
	"ripcheck/internal/toc"
)

func testDisc(t *testing.T) *toc.Disc {
	t.Helper()
	disc, err := toc.Parse("1 3 95000 150 25000 50000")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return disc
}

func TestFreeDB(t *testing.T) {
	if got := discid.FreeDB(testDisc(t)); got != 0x1d04f003 {
		t.Fatalf("expected FreeDB ID 1d04f003, got %08x", got)
	}
}

func TestFreeDBEncodesTrackCount(t *testing.T) {
	if got := discid.FreeDB(testDisc(t)) & 0xFF; got != 3 {
		t.Fatalf("expected low byte 3, got %d", got)
	}
}

func TestAccurateRip(t *testing.T) {
	id1, id2 := discid.AccurateRip(testDisc(t))
	if id1 != 0x0002964e {
		t.Fatalf("expected ID1 0002964e, got %08x", id1)
	}
	if id2 != 0x0008d45b {
		t.Fatalf("expected ID2 0008d45b, got %08x", id2)
	}
}

func TestAccurateRipZeroOffsetCountsAsOne(t *testing.T) {
	// A first track at the lead-in boundary has LSN 0, which the weighted
	// sum replaces with 1 while the plain sum keeps at 0.
	disc, err := toc.Parse("1 1 1000 150")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	id1, id2 := discid.AccurateRip(disc)
	if id1 != 850 {
		t.Fatalf("expected ID1 850, got %d", id1)
	}
	if id2 != 1+850*2 {
		t.Fatalf("expected ID2 %d, got %d", 1+850*2, id2)
	}
}

func TestMusicBrainz(t *testing.T) {
	const want = "enQpJP5Q56LANu44yUhFoare4Gc-"
	if got := discid.MusicBrainz(testDisc(t)); got != want {
		t.Fatalf("expected MusicBrainz ID %s, got %s", want, got)
	}
}

func TestMusicBrainzAlphabet(t *testing.T) {
	got := discid.MusicBrainz(testDisc(t))
	for _, r := range got {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			t.Fatalf("character %q outside the MusicBrainz alphabet in %s", r, got)
		}
	}
}

func TestDBARFileName(t *testing.T) {
	const want = "dBAR-003-0002964e-0008d45b-1d04f003.bin"
	if got := discid.DBARFileName(testDisc(t)); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestComputeBundlesAllIDs(t *testing.T) {
	ids := discid.Compute(testDisc(t))
	if ids.FreeDB != 0x1d04f003 || ids.AccurateRip1 != 0x0002964e ||
		ids.AccurateRip2 != 0x0008d45b || ids.MusicBrainz == "" {
		t.Fatalf("unexpected IDs: %+v", ids)
	}
}
