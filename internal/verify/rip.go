package verify

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"ripcheck/internal/audio"
	"ripcheck/internal/cdda"
	"ripcheck/internal/logging"
	"ripcheck/internal/toc"
)

// htoaPatterns are common names rippers give to hidden track pregap rips.
// They are used when no explicit exclude patterns are configured.
var htoaPatterns = []string{
	"track00.wav",
	"track00.cdda.wav",
	"track00.flac",
	"track00.cdda.flac",
}

// File is one ripped track awaiting verification.
type File struct {
	Path    string
	Frames  int64
	Sectors int64
}

// IsCDRip reports whether the file length is a whole number of CD
// sectors, as every faithful track rip must be.
func (f File) IsCDRip() bool {
	return f.Frames%cdda.FramesPerSector == 0
}

// Rip is an ordered set of ripped audio files forming one disc.
type Rip struct {
	Files  []File
	logger *slog.Logger
}

// NewRip builds a rip from the given paths, keeping their order. Paths
// matching an exclude pattern are dropped, as are files that are not
// supported audio. When exclude is nil the common hidden track names are
// excluded instead.
func NewRip(paths []string, exclude []string, logger *slog.Logger) (*Rip, error) {
	logger = logging.NewComponentLogger(logger, "verify")

	rip := &Rip{logger: logger}
	for _, path := range paths {
		if matchesAny(path, exclude) {
			logger.Debug("excluded file from rip", logging.String("path", path))
			continue
		}
		frames, err := audio.FrameCount(path)
		if err != nil {
			logger.Warn("skipping unsupported file",
				logging.String("path", path),
				logging.Error(err))
			continue
		}
		rip.Files = append(rip.Files, File{
			Path:    path,
			Frames:  frames,
			Sectors: frames / cdda.FramesPerSector,
		})
	}

	if len(rip.Files) == 0 {
		return nil, fmt.Errorf("no usable audio files among %d paths", len(paths))
	}
	return rip, nil
}

func matchesAny(path string, exclude []string) bool {
	patterns := exclude
	if patterns == nil {
		patterns = htoaPatterns
	}
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// SanityCheck ensures the rip matches the disc TOC: same number of files
// as audio tracks, and same track lengths. A track count mismatch is
// always fatal. Length mismatches are logged and are fatal unless
// permissive mode is enabled.
func (r *Rip) SanityCheck(disc *toc.Disc, permissive bool) error {
	numFiles := len(r.Files)
	numTracks := disc.TrackCount()

	if numFiles != numTracks {
		if numFiles == numTracks+1 && disc.HTOASectors() > 0 {
			return fmt.Errorf("%d files for %d tracks: is the pregap track included?",
				numFiles, numTracks)
		}
		return fmt.Errorf("%d files for %d tracks", numFiles, numTracks)
	}

	mismatched := 0
	for i, file := range r.Files {
		num := disc.Tracks[i].Num
		delta := disc.TrackSectors(num) - file.Sectors
		if delta != 0 {
			mismatched++
			r.logger.Warn("track length differs from TOC",
				logging.Int("track", num),
				logging.String("path", file.Path),
				logging.Int64("delta_sectors", delta))
		}
	}

	if mismatched != 0 && !permissive {
		return fmt.Errorf("%d track lengths differ from TOC; retry in permissive mode to verify anyway",
			mismatched)
	}
	return nil
}
