package verify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ripcheck/internal/checksum"
	"ripcheck/internal/dbar"
	"ripcheck/internal/logging"
	"ripcheck/internal/toc"
)

// Options controls a verification run.
type Options struct {
	// Permissive downgrades TOC length mismatches to warnings.
	Permissive bool
}

// Verify checks every file of the rip against the AccurateRip checksums
// in index. The v2 checksum is tried first since most database entries
// were submitted by v2 rippers; the v1 checksum is the fallback.
func (r *Rip) Verify(ctx context.Context, disc *toc.Disc, index dbar.Index, opts Options) (DiscResult, error) {
	if err := r.SanityCheck(disc, opts.Permissive); err != nil {
		return DiscResult{}, err
	}

	result := DiscResult{RunID: uuid.NewString()}
	logger := r.logger.With(logging.String(logging.FieldRunID, result.RunID))
	logger.Info("verifying rip", logging.Int("tracks", len(r.Files)))

	for i, file := range r.Files {
		num := i + 1
		sums, err := checksum.ComputeFile(ctx, file.Path, num, len(r.Files), checksum.Options{})
		if err != nil {
			return DiscResult{}, err
		}

		track := TrackResult{
			Track:      num,
			Path:       file.Path,
			CRC32:      sums.CRC32,
			Checksum:   sums.ARv2,
			Version:    "ARv2",
			Confidence: -1,
			Response:   -1,
		}

		switch {
		case len(index[num]) == 0:
			track.Status = StatusNoData
			logger.Info("no database checksums for track", logging.Int("track", num))
		default:
			match, ok := index.Find(num, sums.ARv2)
			if !ok {
				if match, ok = index.Find(num, sums.ARv1); ok {
					track.Checksum = sums.ARv1
				}
			}
			if ok {
				track.Status = StatusOK
				track.Version = fmt.Sprintf("ARv%d", match.Version)
				track.Confidence = match.Confidence
				track.Response = match.Response
				logger.Info("track verified",
					logging.Int("track", num),
					logging.String("version", track.Version),
					logging.Uint64("checksum", uint64(track.Checksum)),
					logging.Int("confidence", track.Confidence),
					logging.Int("response", track.Response))
			} else {
				track.Status = StatusFailed
				logger.Warn("track did not verify",
					logging.Int("track", num),
					logging.Uint64("arv1", uint64(sums.ARv1)),
					logging.Uint64("arv2", uint64(sums.ARv2)))
			}
		}
		result.Tracks = append(result.Tracks, track)
	}

	logger.Info("verification finished", logging.Bool("all_ok", result.AllOK()))
	return result, nil
}
