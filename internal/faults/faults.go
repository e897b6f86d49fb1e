package faults

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for every failure class the engine can report. Callers
// classify errors with errors.Is against these instead of inspecting
// component internals.
var (
	// ErrInvalidArgument flags track numbering that violates CD constraints.
	// It is reported before any I/O is attempted.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedFormat flags audio streams that are not CDDA
	// (wrong container, channel count, sample rate, or bit depth).
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrIO flags unreadable, truncated, or corrupt input files.
	ErrIO = errors.New("i/o failure")
	// ErrAllocation flags sample buffers that cannot be allocated because
	// the declared frame count is absurd or memory is exhausted.
	ErrAllocation = errors.New("allocation failure")
	// ErrConcurrency flags a checksum worker that died mid-computation.
	ErrConcurrency = errors.New("concurrency failure")
)

// Wrap builds an error message with component context while tagging it with
// the provided marker for later classification. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short label for the failure class of err, suitable for
// structured log fields and CLI output.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrAllocation):
		return "allocation_failure"
	case errors.Is(err, ErrConcurrency):
		return "concurrency_failure"
	default:
		return "io_failure"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "engine failure"
	}
	return strings.Join(parts, ": ")
}
