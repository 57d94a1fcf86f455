// Package talea provides the cyclic count pattern driving the talea
// rhythm generator.
//
// A talea is a finite sequence of signed counts read cyclically at a
// fixed power-of-two denominator. Positive counts are pitched, negative
// counts are rests. An optional preamble is read once before the cycle
// starts; optional end counts replace the tail of whatever the cycle
// produced. Advancing a talea by a consumed weight rotates the pattern
// so a later call resumes exactly where the previous one stopped.
package talea

import (
	"errors"
	"fmt"
	"math"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
	"github.com/Abjad/abjad-ext-rmakers-sub000/sequence"
)

// Fill sentinels may appear once among Counts in place of an integer.
// The generator replaces the sentinel with whatever weight the target
// divisions leave unallocated: FillNotes as one pitched count,
// FillRests as one rest count. A talea using a fill sentinel must have
// an empty preamble.
const (
	FillNotes = math.MaxInt
	FillRests = math.MinInt
)

// ErrNegativeWeight is returned when a talea is advanced by a negative
// weight.
var ErrNegativeWeight = errors.New("advance weight must be nonnegative")

// Talea is a cyclic count pattern. The zero value is invalid; populate
// Counts and Denominator and check Validate.
type Talea struct {
	// Counts is the repeating pattern. Positive counts are pitched,
	// negative counts are rests. At most one entry may be FillNotes or
	// FillRests.
	Counts []int

	// Denominator is the positive power of two under which counts are
	// read as durations.
	Denominator int

	// EndCounts, when non-empty, replace the final counts of the
	// generated output so the tail is deterministic regardless of
	// where the cycle stopped.
	EndCounts []int

	// Preamble is read once, before Counts begin to cycle.
	Preamble []int
}

// IsFill reports whether a count is one of the fill sentinels.
func IsFill(count int) bool {
	return count == FillNotes || count == FillRests
}

// Validate checks the talea invariants.
func (t Talea) Validate() error {
	if len(t.Counts) == 0 {
		return fmt.Errorf("counts must not be empty")
	}
	if !duration.IsPowerOfTwo(t.Denominator) {
		return fmt.Errorf("denominator must be a positive power of two, got %d", t.Denominator)
	}
	fills := 0
	for _, count := range t.Counts {
		if IsFill(count) {
			fills++
		}
	}
	if fills > 1 {
		return fmt.Errorf("at most one fill sentinel is allowed, got %d", fills)
	}
	if fills == 1 && len(t.Preamble) > 0 {
		return fmt.Errorf("preamble must be empty when counts contain a fill sentinel")
	}
	for _, count := range t.Preamble {
		if IsFill(count) {
			return fmt.Errorf("preamble must not contain fill sentinels")
		}
	}
	for _, count := range t.EndCounts {
		if IsFill(count) {
			return fmt.Errorf("end counts must not contain fill sentinels")
		}
	}
	return nil
}

// HasFill reports whether Counts contain a fill sentinel.
func (t Talea) HasFill() bool {
	for _, count := range t.Counts {
		if IsFill(count) {
			return true
		}
	}
	return false
}

// Len returns the number of counts, preamble excluded.
func (t Talea) Len() int {
	return len(t.Counts)
}

// Period returns the weight after which the pattern fully repeats:
// the sum of absolute counts, preamble excluded. Fill sentinels carry
// no weight of their own.
func (t Talea) Period() int {
	total := 0
	for _, count := range t.Counts {
		if IsFill(count) {
			continue
		}
		total += absInt(count)
	}
	return total
}

// Contains reports whether position lands exactly on a cumulative
// weight boundary of the preamble followed by the repeating counts.
// Positions are period-relative: neither the denominator nor rests
// affect the answer. Position must be positive; nonpositive positions
// are never contained.
func (t Talea) Contains(position int) bool {
	if position <= 0 || t.HasFill() {
		return false
	}
	preambleWeight := 0
	if len(t.Preamble) > 0 {
		sums := sequence.CumulativeSums(t.Preamble)
		for _, sum := range sums[1:] {
			if position == sum {
				return true
			}
		}
		preambleWeight = sums[len(sums)-1]
	}
	period := t.Period()
	if period == 0 {
		return false
	}
	position -= preambleWeight
	position = ((position % period) + period) % period
	sums := sequence.CumulativeSums(t.Counts)
	for _, sum := range sums[:len(sums)-1] {
		if position == sum {
			return true
		}
	}
	return false
}

// At returns the count and denominator at a logical index, treating
// preamble followed by counts as an unbounded cyclic sequence.
// Negative indexes wrap backwards.
func (t Talea) At(index int) (int, int) {
	items := make([]int, 0, len(t.Preamble)+len(t.Counts))
	items = append(items, t.Preamble...)
	items = append(items, t.Counts...)
	n := len(items)
	index = ((index % n) + n) % n
	return items[index], t.Denominator
}

// Slice returns the counts in the logical index range [start, stop) as
// (count, denominator) pairs, wrapping cyclically.
func (t Talea) Slice(start, stop int) [][2]int {
	if stop <= start {
		return nil
	}
	pairs := make([][2]int, 0, stop-start)
	for i := start; i < stop; i++ {
		count, denominator := t.At(i)
		pairs = append(pairs, [2]int{count, denominator})
	}
	return pairs
}

// Durations returns preamble plus one cycle of counts as durations
// under the talea denominator. Returns an error when a fill sentinel
// is present, since a sentinel has no duration of its own.
func (t Talea) Durations() ([]duration.Duration, error) {
	if t.HasFill() {
		return nil, fmt.Errorf("fill sentinel has no duration")
	}
	out := make([]duration.Duration, 0, len(t.Preamble)+len(t.Counts))
	for _, count := range t.Preamble {
		out = append(out, duration.Duration{Numerator: count, Denominator: t.Denominator})
	}
	for _, count := range t.Counts {
		out = append(out, duration.Duration{Numerator: count, Denominator: t.Denominator})
	}
	return out, nil
}

// Advance consumes weight from the front of the talea and returns the
// rotated pattern. Consumption trims the preamble first; beyond the
// preamble, the counts are repeated as many times as needed and the
// remainder of whatever count straddles the boundary becomes the new
// preamble. Counts themselves are never modified. Advancing by zero is
// the identity; advancing a fill-sentinel talea is not meaningful.
func (t Talea) Advance(weight int) (Talea, error) {
	if weight < 0 {
		return Talea{}, fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}
	if weight == 0 {
		return t.clone(), nil
	}
	if t.HasFill() {
		return Talea{}, fmt.Errorf("cannot advance a talea containing a fill sentinel")
	}
	preambleWeight := sequence.Weight(t.Preamble)
	var newPreamble []int
	switch {
	case weight < preambleWeight:
		parts, err := sequence.SplitByWeights(t.Preamble, []int{weight}, true)
		if err != nil {
			return Talea{}, fmt.Errorf("advance: %w", err)
		}
		if len(parts) > 1 {
			newPreamble = parts[1]
		}
	case weight == preambleWeight:
		newPreamble = nil
	default:
		remaining := weight - preambleWeight
		extended := append([]int{}, t.Counts...)
		for sequence.Weight(extended) < remaining {
			extended = append(extended, t.Counts...)
		}
		if sequence.Weight(extended) > remaining {
			parts, err := sequence.SplitByWeights(extended, []int{remaining}, true)
			if err != nil {
				return Talea{}, fmt.Errorf("advance: %w", err)
			}
			if len(parts) > 1 {
				newPreamble = parts[1]
			}
		}
	}
	advanced := t.clone()
	advanced.Preamble = newPreamble
	return advanced, nil
}

func (t Talea) clone() Talea {
	return Talea{
		Counts:      append([]int{}, t.Counts...),
		Denominator: t.Denominator,
		EndCounts:   append([]int{}, t.EndCounts...),
		Preamble:    append([]int{}, t.Preamble...),
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
