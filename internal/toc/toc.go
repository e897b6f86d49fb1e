package toc

import (
	"fmt"
	"strconv"
	"strings"

	"ripcheck/internal/cdda"
)

// MaxTracks mirrors the Red Book limit on track numbers.
const MaxTracks = 99

// Track is one entry of a disc's table of contents. Offsets are LBA frame
// addresses with the 150-sector lead-in included, the convention used by
// MusicBrainz TOC strings.
type Track struct {
	Num    int
	Offset int64
}

// Disc is the table of contents of one CD: the track list in disc order
// plus the LBA offset of the lead-out.
type Disc struct {
	Tracks  []Track
	Leadout int64
}

// Parse reads a disc TOC from the plain-text form
//
//	first last leadout offset1 offset2 ... offsetN
//
// where all values are LBA frame addresses including the lead-in. This is
// the TOC layout disc ID tools exchange, so a TOC can be copied straight
// out of a ripper log or a MusicBrainz URL.
func Parse(s string) (*Disc, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, fmt.Errorf("toc: expected at least 4 fields, got %d", len(fields))
	}

	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("toc: field %d: %w", i+1, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("toc: field %d: negative value %d", i+1, v)
		}
		values[i] = v
	}

	first, last, leadout := values[0], values[1], values[2]
	offsets := values[3:]

	if first != 1 {
		return nil, fmt.Errorf("toc: first track must be 1, got %d", first)
	}
	if last < first || last > MaxTracks {
		return nil, fmt.Errorf("toc: last track %d outside [%d, %d]", last, first, MaxTracks)
	}
	if int64(len(offsets)) != last-first+1 {
		return nil, fmt.Errorf("toc: %d offsets for %d tracks", len(offsets), last-first+1)
	}

	disc := &Disc{Leadout: leadout}
	prev := int64(-1)
	for i, off := range offsets {
		if off <= prev {
			return nil, fmt.Errorf("toc: track %d offset %d does not increase", i+1, off)
		}
		if off >= leadout {
			return nil, fmt.Errorf("toc: track %d offset %d beyond lead-out %d", i+1, off, leadout)
		}
		disc.Tracks = append(disc.Tracks, Track{Num: i + 1, Offset: off})
		prev = off
	}
	return disc, nil
}

// TrackCount returns the number of tracks in the TOC.
func (d *Disc) TrackCount() int {
	return len(d.Tracks)
}

// TrackSectors returns the length of the 1-based track number in sectors,
// measured to the next track's offset or to the lead-out.
func (d *Disc) TrackSectors(num int) int64 {
	idx := num - 1
	if idx < 0 || idx >= len(d.Tracks) {
		return 0
	}
	end := d.Leadout
	if idx+1 < len(d.Tracks) {
		end = d.Tracks[idx+1].Offset
	}
	return end - d.Tracks[idx].Offset
}

// TrackFrames returns the length of a track in audio frames.
func (d *Disc) TrackFrames(num int) int64 {
	return d.TrackSectors(num) * cdda.FramesPerSector
}

// HTOASectors returns the length of the hidden track one audio gap: any
// space between the lead-in and the first track beyond the mandatory 2
// second pregap. Zero means no HTOA.
func (d *Disc) HTOASectors() int64 {
	if len(d.Tracks) == 0 {
		return 0
	}
	if gap := d.Tracks[0].Offset - cdda.LeadInSectors; gap > 0 {
		return gap
	}
	return 0
}

// String renders the TOC back into its plain-text form.
func (d *Disc) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "1 %d %d", len(d.Tracks), d.Leadout)
	for _, t := range d.Tracks {
		fmt.Fprintf(&b, " %d", t.Offset)
	}
	return b.String()
}
