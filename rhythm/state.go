package rhythm

import "github.com/Abjad/abjad-ext-rmakers-sub000/duration"

// State carries generation accounting between calls. A zero State
// starts a fresh stream; feeding a returned State back as the previous
// state reproduces exactly the output one unbroken call would have
// produced. Callers must serialize calls for a given logical stream;
// independent streams with independent State values are unrelated.
type State struct {
	// DivisionsConsumed counts divisions generated so far. It rotates
	// cyclic parameter vectors (extra counts, interpolations) so
	// resumed calls continue the cycle.
	DivisionsConsumed int `json:"divisions_consumed" yaml:"divisions_consumed"`

	// IncompleteLastNote is true when the previous call ended mid-count,
	// so the stream's next pitched entry continues a logical tie.
	IncompleteLastNote bool `json:"incomplete_last_note" yaml:"incomplete_last_note"`

	// LogicalTiesProduced counts logical ties emitted so far: one per
	// rest, one per maximal chain of tied pitched entries.
	LogicalTiesProduced int `json:"logical_ties_produced" yaml:"logical_ties_produced"`

	// TaleaWeightConsumed is the pattern weight consumed so far, used
	// to advance the talea on resumption.
	TaleaWeightConsumed int `json:"talea_weight_consumed" yaml:"talea_weight_consumed"`
}

// NumericMap is the ordered event list generated for one division:
// positive durations are pitched attacks, negative durations are
// rests. Zero entries are never present.
type NumericMap []duration.Duration

// Weight returns the sum of absolute entry durations, which equals the
// division's (possibly extra-count-adjusted) target duration.
func (m NumericMap) Weight() duration.Duration {
	total := duration.FromInt(0)
	for _, d := range m {
		total = total.Add(d.Abs())
	}
	return total
}
