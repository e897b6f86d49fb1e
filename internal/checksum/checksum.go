package checksum

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ripcheck/internal/audio"
	"ripcheck/internal/faults"
)

// MaxTracks is the highest track number a Red Book CD can carry.
const MaxTracks = 99

// Options selects optional engine outputs.
type Options struct {
	// SkipSilence enables the second CRC32 variant, computed over the
	// buffer with all zero samples removed. It detects rips that differ
	// only by silence padding.
	SkipSilence bool
}

// Result is the immutable tuple produced by one computation.
type Result struct {
	ARv1  uint32
	ARv2  uint32
	CRC32 uint32
	// CRC32SkipSilence is meaningful only when HasSkipSilence is set.
	CRC32SkipSilence uint32
	HasSkipSilence   bool
}

// ValidateTrackPosition checks CD track numbering bounds. It performs no
// I/O, so invalid positions are rejected before any file is touched.
func ValidateTrackPosition(track, totalTracks int) error {
	if totalTracks < 1 || totalTracks > MaxTracks {
		return faults.Wrap(faults.ErrInvalidArgument, "checksum", "validate",
			fmt.Sprintf("total tracks %d outside [1, %d]", totalTracks, MaxTracks), nil)
	}
	if track < 1 || track > totalTracks {
		return faults.Wrap(faults.ErrInvalidArgument, "checksum", "validate",
			fmt.Sprintf("track %d outside [1, %d]", track, totalTracks), nil)
	}
	return nil
}

// Compute runs the checksum engines over an already-loaded sample buffer.
//
// The AccurateRip pass and the whole-buffer CRC32 pass are pure reads over
// the same immutable bytes, so they run on two workers in parallel. The
// silence-stripped CRC32 compacts the buffer in place and therefore runs
// strictly after both have joined; the buffer must not be reused afterwards.
func Compute(ctx context.Context, buf *audio.Buffer, track, totalTracks int, opts Options) (Result, error) {
	if err := ValidateTrackPosition(track, totalTracks); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	data := buf.Bytes()

	var crc uint32
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = faults.Wrap(faults.ErrConcurrency, "checksum", "crc32 worker", fmt.Sprint(r), nil)
			}
		}()
		crc = CopyCRC32(data)
		return nil
	})

	ar := AccurateRipSum(data, track, totalTracks)

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{ARv1: ar.V1, ARv2: ar.V2, CRC32: crc}
	if opts.SkipSilence {
		result.CRC32SkipSilence = CopyCRC32(StripSilence(data))
		result.HasSkipSilence = true
	}
	return result, nil
}

// ComputeFile decodes the track at path and computes its checksums. The
// track position decides the AccurateRip guard windows: the first track of
// a disc skips its first five sectors, the last track its final five. Any
// upstream failure aborts the computation; no partial result is returned.
func ComputeFile(ctx context.Context, path string, track, totalTracks int, opts Options) (Result, error) {
	if err := ValidateTrackPosition(track, totalTracks); err != nil {
		return Result{}, err
	}

	_, buf, err := audio.Load(path)
	if err != nil {
		return Result{}, err
	}
	return Compute(ctx, buf, track, totalTracks, opts)
}
