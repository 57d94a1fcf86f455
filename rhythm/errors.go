package rhythm

import "errors"

var (
	// ErrPatternExhausted is returned when a read-once-only talea is
	// too short to cover the requested divisions.
	ErrPatternExhausted = errors.New("pattern exhausted")

	// ErrTooSmall reports that a total duration is smaller than the
	// sum of a curve's start and stop durations. It is an alternate
	// outcome rather than a failure: callers fall back to a single
	// flat unit.
	ErrTooSmall = errors.New("total duration too small to interpolate")
)
