package rhythm

import (
	"fmt"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
)

// Spelling configures how a downstream leaf builder decomposes
// nonassignable durations into tied and rested chains. The generators
// in this package return raw unconstrained durations; Spelling is
// carried as data for the builder that consumes them.
type Spelling struct {
	// ForbiddenNoteDuration, when set, forbids pitched durations equal
	// to or greater than it; the builder rewrites them as smaller
	// durations tied together.
	ForbiddenNoteDuration *duration.Duration

	// ForbiddenRestDuration is the rest counterpart of
	// ForbiddenNoteDuration.
	ForbiddenRestDuration *duration.Duration

	// IncreaseMonotonic spells nonassignable durations smallest-first
	// instead of largest-first.
	IncreaseMonotonic bool
}

// Validate checks that any forbidden durations are positive.
func (s Spelling) Validate() error {
	if s.ForbiddenNoteDuration != nil && s.ForbiddenNoteDuration.Sign() <= 0 {
		return fmt.Errorf("forbidden note duration must be positive, got %s", s.ForbiddenNoteDuration)
	}
	if s.ForbiddenRestDuration != nil && s.ForbiddenRestDuration.Sign() <= 0 {
		return fmt.Errorf("forbidden rest duration must be positive, got %s", s.ForbiddenRestDuration)
	}
	return nil
}
