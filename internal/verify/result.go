package verify

import "fmt"

// Status is the verification outcome of a single track.
type Status string

const (
	// StatusOK means the database confirmed a track checksum.
	StatusOK Status = "OK"
	// StatusFailed means the database knows the track but no checksum matched.
	StatusFailed Status = "FAILED"
	// StatusNoData means the database has no checksums for the track.
	StatusNoData Status = "N/A"
)

// TrackResult holds the verification outcome of one ripped file.
// Confidence and Response are -1 when no checksum matched.
type TrackResult struct {
	Track      int    `json:"track"`
	Path       string `json:"path"`
	CRC32      uint32 `json:"crc32"`
	Checksum   uint32 `json:"checksum"`
	Version    string `json:"version"`
	Confidence int    `json:"confidence"`
	Response   int    `json:"response"`
	Status     Status `json:"status"`
}

// DiscResult aggregates results for a whole rip.
type DiscResult struct {
	RunID  string        `json:"run_id"`
	Tracks []TrackResult `json:"tracks"`
}

// AllOK reports whether every track with database data verified.
func (r DiscResult) AllOK() bool {
	for _, track := range r.Tracks {
		if track.Status == StatusFailed {
			return false
		}
	}
	return true
}

// Summary describes the overall verification outcome in one or two
// sentences.
func (r DiscResult) Summary() string {
	failed, nodata := 0, 0
	for _, track := range r.Tracks {
		switch track.Status {
		case StatusFailed:
			failed++
		case StatusNoData:
			nodata++
		}
	}

	prefix := ""
	if nodata != 0 {
		plural := "track"
		if nodata > 1 {
			plural = "tracks"
		}
		prefix = fmt.Sprintf("%d %s not present in AccurateRip database.\n", nodata, plural)
	}

	switch {
	case failed == 0 && nodata == 0:
		return prefix + "All tracks verified successfully."
	case failed == 0:
		return prefix + "All tracks with available checksums verified successfully."
	case failed == len(r.Tracks)-nodata:
		return prefix + "Verification of all tracks failed. Looks like your disc pressing does not exist in AccurateRip database."
	default:
		return prefix + "Verification of some tracks failed. Your disc may be damaged."
	}
}
