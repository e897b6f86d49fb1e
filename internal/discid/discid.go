package discid

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"

	"ripcheck/internal/cdda"
	"ripcheck/internal/toc"
)

// IDs bundles the identifiers a disc is known by in the lookup databases.
type IDs struct {
	FreeDB       uint32
	AccurateRip1 uint32
	AccurateRip2 uint32
	MusicBrainz  string
}

// Compute derives every supported disc ID from a TOC.
func Compute(disc *toc.Disc) IDs {
	ar1, ar2 := AccurateRip(disc)
	return IDs{
		FreeDB:       FreeDB(disc),
		AccurateRip1: ar1,
		AccurateRip2: ar2,
		MusicBrainz:  MusicBrainz(disc),
	}
}

// FreeDB computes the classic CDDB disc ID: a digit-sum checksum byte,
// the playing time in seconds and the track count packed into 32 bits.
func FreeDB(disc *toc.Disc) uint32 {
	var n int64
	for _, t := range disc.Tracks {
		n += digitSum(t.Offset / cdda.SectorsPerSecond)
	}
	seconds := disc.Leadout/cdda.SectorsPerSecond - disc.Tracks[0].Offset/cdda.SectorsPerSecond
	return uint32(n%0xFF)<<24 | uint32(seconds)<<8 | uint32(len(disc.Tracks))
}

// AccurateRip computes the two disc IDs the AccurateRip database keys its
// responses by. Both are sums over the zero-based LSN track offsets, the
// second weighted by track number with zero offsets counted as one.
func AccurateRip(disc *toc.Disc) (uint32, uint32) {
	var id1, id2 uint64
	for _, t := range disc.Tracks {
		lsn := uint64(t.Offset - cdda.LeadInSectors)
		id1 += lsn
		if lsn == 0 {
			lsn = 1
		}
		id2 += lsn * uint64(t.Num)
	}
	leadout := uint64(disc.Leadout - cdda.LeadInSectors)
	id1 += leadout
	id2 += leadout * uint64(len(disc.Tracks)+1)
	return uint32(id1), uint32(id2)
}

// MusicBrainz computes the MusicBrainz disc ID: a SHA-1 over the first and
// last track numbers and a fixed grid of 100 offsets with the lead-out in
// slot zero, encoded with the MusicBrainz base64 alphabet.
func MusicBrainz(disc *toc.Disc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02X%02X", disc.Tracks[0].Num, disc.Tracks[len(disc.Tracks)-1].Num)
	fmt.Fprintf(&b, "%08X", disc.Leadout)
	for _, t := range disc.Tracks {
		fmt.Fprintf(&b, "%08X", t.Offset)
	}
	for i := len(disc.Tracks); i < toc.MaxTracks; i++ {
		b.WriteString("00000000")
	}

	digest := sha1.Sum([]byte(b.String()))
	id := base64.StdEncoding.EncodeToString(digest[:])
	replacer := strings.NewReplacer("+", ".", "/", "_", "=", "-")
	return replacer.Replace(id)
}

// DBARFileName returns the name of the AccurateRip response file for a
// disc, as served by the database mirrors.
func DBARFileName(disc *toc.Disc) string {
	ids := Compute(disc)
	return fmt.Sprintf("dBAR-%03d-%08x-%08x-%08x.bin",
		len(disc.Tracks), ids.AccurateRip1, ids.AccurateRip2, ids.FreeDB)
}

func digitSum(n int64) int64 {
	var s int64
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
