package rhythm

import (
	"fmt"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
	"github.com/Abjad/abjad-ext-rmakers-sub000/sequence"
)

// Incise describes fixed prefix and suffix patterns trimmed onto
// divisions, independent of any repeating pattern.
type Incise struct {
	// PrefixTalea supplies prefix counts, read cyclically across
	// divisions; PrefixCounts[i] (cyclic) says how many to take for
	// division i.
	PrefixTalea  []int
	PrefixCounts []int

	// SuffixTalea and SuffixCounts mirror the prefix pair at division
	// ends.
	SuffixTalea  []int
	SuffixCounts []int

	// Denominator is the positive power of two under which prefix and
	// suffix counts are read. Required when either talea is set.
	Denominator int

	// BodyRatio splits the middle region proportionally into pitched
	// units; nil or empty means one undivided unit.
	BodyRatio []int

	// FillWithRests turns the middle region into a single rest.
	FillWithRests bool

	// OuterDivisionsOnly incises only the first division's start and
	// the last division's end, leaving interior divisions as plain
	// bodies.
	OuterDivisionsOnly bool
}

// Validate checks the incise invariants.
func (in Incise) Validate() error {
	if len(in.PrefixTalea) > 0 && len(in.PrefixCounts) == 0 {
		return fmt.Errorf("prefix talea requires prefix counts")
	}
	if len(in.SuffixTalea) > 0 && len(in.SuffixCounts) == 0 {
		return fmt.Errorf("suffix talea requires suffix counts")
	}
	for _, n := range in.PrefixCounts {
		if n < 0 {
			return fmt.Errorf("prefix counts must be nonnegative, got %d", n)
		}
	}
	for _, n := range in.SuffixCounts {
		if n < 0 {
			return fmt.Errorf("suffix counts must be nonnegative, got %d", n)
		}
	}
	denominatorRequired := len(in.PrefixTalea) > 0 || len(in.SuffixTalea) > 0
	if (denominatorRequired || in.Denominator != 0) && !duration.IsPowerOfTwo(in.Denominator) {
		return fmt.Errorf("denominator must be a positive power of two, got %d", in.Denominator)
	}
	for _, r := range in.BodyRatio {
		if r <= 0 {
			return fmt.Errorf("body ratio parts must be positive, got %d", r)
		}
	}
	return nil
}

// IncisedResult is the output of the incised builder.
type IncisedResult struct {
	// Maps holds one numeric map per division over the common
	// denominator.
	Maps []NumericMap

	// Divisions holds the extra-count-adjusted division totals over
	// the common denominator.
	Divisions []duration.Duration
}

// Incised builds one prefix/middle/suffix numeric map per division.
// The builder is pure and stateless: incision patterns do not resume
// across calls.
func Incised(divisions []duration.Duration, incise Incise, extraCounts []int) (*IncisedResult, error) {
	if err := incise.Validate(); err != nil {
		return nil, fmt.Errorf("invalid incise: %w", err)
	}
	if err := validateDivisions(divisions); err != nil {
		return nil, err
	}

	denominator := incise.Denominator
	if denominator == 0 {
		denominator = 1
	}
	scaledDivisions, lcd, err := duration.Rescale(divisions, denominator)
	if err != nil {
		return nil, fmt.Errorf("rescale divisions: %w", err)
	}
	multiplier := lcd / denominator
	prefixTalea := scaleCounts(incise.PrefixTalea, multiplier)
	suffixTalea := scaleCounts(incise.SuffixTalea, multiplier)
	scaledExtra := scaleCounts(extraCounts, multiplier)

	numerators := make([]int, len(scaledDivisions))
	for i, d := range scaledDivisions {
		numerators[i] = d.Numerator
	}
	prolated, err := prolatedNumerators(numerators, scaledExtra)
	if err != nil {
		return nil, err
	}

	maps := make([]NumericMap, len(prolated))
	prolatedDivisions := make([]duration.Duration, len(prolated))
	prefixCursor, suffixCursor := 0, 0
	last := len(prolated) - 1
	for i, numerator := range prolated {
		var prefix, suffix []int
		if incise.OuterDivisionsOnly {
			if i == 0 {
				prefix = cyclicSlice(prefixTalea, prefixCursor, cyclicAt(incise.PrefixCounts, 0))
			}
			if i == last {
				suffix = cyclicSlice(suffixTalea, suffixCursor, cyclicAt(incise.SuffixCounts, 0))
			}
		} else {
			prefixLength := cyclicAt(incise.PrefixCounts, i)
			suffixLength := cyclicAt(incise.SuffixCounts, i)
			prefix = cyclicSlice(prefixTalea, prefixCursor, prefixLength)
			suffix = cyclicSlice(suffixTalea, suffixCursor, suffixLength)
			prefixCursor += prefixLength
			suffixCursor += suffixLength
		}
		entries, err := incisedDurationList(numerator, prefix, suffix, incise, lcd)
		if err != nil {
			return nil, fmt.Errorf("division %d: %w", i, err)
		}
		maps[i] = entries
		prolatedDivisions[i] = duration.Duration{Numerator: numerator, Denominator: lcd}
	}
	return &IncisedResult{Maps: maps, Divisions: prolatedDivisions}, nil
}

// incisedDurationList assembles prefix ++ middle ++ suffix for one
// division, truncating the prefix when the division is too short and
// the suffix symmetrically, and dropping zero entries.
func incisedDurationList(numerator int, prefix, suffix []int, incise Incise, lcd int) (NumericMap, error) {
	prefixWeight := sequence.Weight(prefix)
	suffixWeight := sequence.Weight(suffix)
	if numerator < prefixWeight {
		truncated, err := sequence.TruncateToWeight(prefix, numerator)
		if err != nil {
			return nil, fmt.Errorf("truncate prefix: %w", err)
		}
		prefix = truncated
		prefixWeight = numerator
	}
	middle := numerator - prefixWeight - suffixWeight
	suffixSpace := numerator - prefixWeight
	if suffixSpace <= 0 {
		suffix = nil
	} else if suffixSpace < suffixWeight {
		truncated, err := sequence.TruncateToWeight(suffix, suffixSpace)
		if err != nil {
			return nil, fmt.Errorf("truncate suffix: %w", err)
		}
		suffix = truncated
	}

	entries := make(NumericMap, 0, len(prefix)+len(suffix)+2)
	for _, n := range prefix {
		if n == 0 {
			continue
		}
		entries = append(entries, duration.Duration{Numerator: n, Denominator: lcd})
	}
	entries = append(entries, middleDurations(middle, incise, lcd)...)
	for _, n := range suffix {
		if n == 0 {
			continue
		}
		entries = append(entries, duration.Duration{Numerator: n, Denominator: lcd})
	}
	return entries, nil
}

// middleDurations builds the body between prefix and suffix: nothing
// when no space remains, a single rest under rest fill, proportional
// pitched shards under a body ratio, and one pitched unit otherwise.
// Outer-only incision always keeps the body undivided.
func middleDurations(middle int, incise Incise, lcd int) []duration.Duration {
	if middle <= 0 {
		return nil
	}
	if incise.FillWithRests {
		return []duration.Duration{{Numerator: -middle, Denominator: lcd}}
	}
	if incise.OuterDivisionsOnly || len(incise.BodyRatio) == 0 {
		return []duration.Duration{{Numerator: middle, Denominator: lcd}}
	}
	ratioSum := 0
	for _, r := range incise.BodyRatio {
		ratioSum += r
	}
	shards := make([]duration.Duration, 0, len(incise.BodyRatio))
	for _, r := range incise.BodyRatio {
		shard := duration.Duration{Numerator: middle * r, Denominator: ratioSum * lcd}
		shards = append(shards, shard.Reduce())
	}
	return shards
}

// cyclicAt indexes a cyclic count vector, treating an empty vector as
// all zeros.
func cyclicAt(counts []int, index int) int {
	if len(counts) == 0 {
		return 0
	}
	return counts[index%len(counts)]
}

// cyclicSlice takes length counts from a cyclic vector starting at the
// given cursor; an empty vector yields nothing.
func cyclicSlice(counts []int, start, length int) []int {
	if len(counts) == 0 || length <= 0 {
		return nil
	}
	out := make([]int, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, counts[(start+i)%len(counts)])
	}
	return out
}
