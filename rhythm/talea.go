package rhythm

import (
	"fmt"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
	"github.com/Abjad/abjad-ext-rmakers-sub000/sequence"
	"github.com/Abjad/abjad-ext-rmakers-sub000/talea"
)

// TaleaConfig holds the optional parameters of the talea generator.
type TaleaConfig struct {
	// ExtraCounts stretch or compress divisions: entry i (cyclic,
	// rotated by divisions already consumed) adjusts division i's
	// effective numerator via AdjustExtraCount.
	ExtraCounts []int

	// ReadOnceOnly forbids repeating the pattern: generation fails
	// with ErrPatternExhausted when preamble plus one cycle of counts
	// cannot cover the requested divisions.
	ReadOnceOnly bool

	// Advance consumes this much pattern weight before generation
	// starts, on top of any weight recorded in the previous state.
	Advance int
}

// TaleaResult is the output of the talea generator.
type TaleaResult struct {
	// Maps holds one numeric map per division, every entry spelled
	// over the common denominator.
	Maps []NumericMap

	// Divisions holds the extra-count-adjusted division totals over
	// the common denominator; map i's absolute weight equals
	// Divisions[i].
	Divisions []duration.Duration

	// State is the updated accounting state.
	State State
}

// Talea reads pattern cyclically across divisions, producing one
// numeric map per division whose absolute weights sum exactly to the
// (possibly extra-count-adjusted) division. The previous state resumes
// the pattern where an earlier call stopped: generating divisions
// D1++D2 in one call equals generating D1 then D2 with the returned
// state threaded through.
func Talea(divisions []duration.Duration, pattern talea.Talea, cfg TaleaConfig, previous State) (*TaleaResult, error) {
	if err := pattern.Validate(); err != nil {
		return nil, fmt.Errorf("invalid talea: %w", err)
	}
	if err := validateDivisions(divisions); err != nil {
		return nil, err
	}
	if cfg.Advance < 0 {
		return nil, fmt.Errorf("advance must be nonnegative, got %d", cfg.Advance)
	}

	advanced, err := pattern.Advance(cfg.Advance)
	if err != nil {
		return nil, fmt.Errorf("advance talea: %w", err)
	}
	advanced, err = advanced.Advance(previous.TaleaWeightConsumed)
	if err != nil {
		return nil, fmt.Errorf("resume talea: %w", err)
	}
	extraCounts := sequence.Rotate(cfg.ExtraCounts, -previous.DivisionsConsumed)

	scaledDivisions, lcd, err := duration.Rescale(divisions, pattern.Denominator)
	if err != nil {
		return nil, fmt.Errorf("rescale divisions: %w", err)
	}
	multiplier := lcd / pattern.Denominator
	counts := scaleCounts(advanced.Counts, multiplier)
	preamble := scaleCounts(advanced.Preamble, multiplier)
	endCounts := scaleCounts(advanced.EndCounts, multiplier)
	extraCounts = scaleCounts(extraCounts, multiplier)

	numerators := make([]int, len(scaledDivisions))
	for i, d := range scaledDivisions {
		numerators[i] = d.Numerator
	}
	prolated, err := prolatedNumerators(numerators, extraCounts)
	if err != nil {
		return nil, err
	}
	totalWeight := 0
	for _, n := range prolated {
		totalWeight += n
	}

	if advanced.HasFill() {
		counts = expandFill(counts, totalWeight)
	}

	preambleWeight := sequence.Weight(preamble)
	if cfg.ReadOnceOnly && preambleWeight+sequence.Weight(counts) < totalWeight {
		return nil, fmt.Errorf("%w: preamble %v plus counts %v are too short to read weights %v once",
			ErrPatternExhausted, preamble, counts, prolated)
	}

	var source []int
	if totalWeight <= preambleWeight {
		source, err = sequence.TruncateToWeight(preamble, totalWeight)
		if err != nil {
			return nil, fmt.Errorf("truncate preamble: %w", err)
		}
	} else {
		extended, err := sequence.RepeatToWeight(counts, totalWeight-preambleWeight)
		if err != nil {
			return nil, fmt.Errorf("extend counts: %w", err)
		}
		source = append(append([]int{}, preamble...), extended...)
	}
	lists, err := sequence.SplitByWeights(source, prolated, false)
	if err != nil {
		return nil, fmt.Errorf("split counts: %w", err)
	}

	if len(endCounts) > 0 {
		lists, err = spliceEndCounts(lists, endCounts)
		if err != nil {
			return nil, err
		}
	}

	maps := make([]NumericMap, len(lists))
	prolatedDivisions := make([]duration.Duration, len(lists))
	for i, list := range lists {
		entries := make(NumericMap, 0, len(list))
		for _, n := range list {
			if n == 0 {
				continue
			}
			entries = append(entries, duration.Duration{Numerator: n, Denominator: lcd})
		}
		maps[i] = entries
		prolatedDivisions[i] = duration.Duration{Numerator: prolated[i], Denominator: lcd}
	}

	flat := flattenLists(lists)
	ties := countLogicalTies(flat, preamble, counts, len(endCounts))
	incomplete := false
	if !pattern.HasFill() && totalWeight > 0 && len(flat) > 0 {
		incomplete = !advanced.Contains(totalWeight) && flat[len(flat)-1] > 0
	}

	next := State{
		DivisionsConsumed:   previous.DivisionsConsumed + len(divisions),
		TaleaWeightConsumed: previous.TaleaWeightConsumed + totalWeight,
		LogicalTiesProduced: previous.LogicalTiesProduced + ties,
		IncompleteLastNote:  incomplete,
	}
	if previous.IncompleteLastNote {
		next.LogicalTiesProduced--
	}
	return &TaleaResult{Maps: maps, Divisions: prolatedDivisions, State: next}, nil
}

// validateDivisions checks that every division is positive with a
// power-of-two denominator in lowest terms.
func validateDivisions(divisions []duration.Duration) error {
	for i, d := range divisions {
		if d.Denominator == 0 {
			return fmt.Errorf("division %d has zero denominator", i)
		}
		if d.Sign() <= 0 {
			return fmt.Errorf("division %d must be positive, got %s", i, d)
		}
		if !duration.IsPowerOfTwo(d.Reduce().Denominator) {
			return fmt.Errorf("division %d denominator must be a power of two, got %s", i, d)
		}
	}
	return nil
}

// scaleCounts multiplies every count by the common-denominator
// multiplier, leaving fill sentinels untouched.
func scaleCounts(counts []int, multiplier int) []int {
	scaled := make([]int, len(counts))
	for i, n := range counts {
		if talea.IsFill(n) {
			scaled[i] = n
			continue
		}
		scaled[i] = n * multiplier
	}
	return scaled
}

// expandFill replaces the fill sentinel with whatever weight the
// divisions leave unallocated by the explicit counts: pitched for
// FillNotes, rest for FillRests.
func expandFill(counts []int, totalWeight int) []int {
	explicit := 0
	fillIndex := -1
	rests := false
	for i, n := range counts {
		if talea.IsFill(n) {
			fillIndex = i
			rests = n == talea.FillRests
			continue
		}
		explicit += absInt(n)
	}
	implicit := totalWeight - explicit
	if rests {
		implicit = -implicit
	}
	expanded := append([]int{}, counts...)
	expanded[fillIndex] = implicit
	return expanded
}

// spliceEndCounts replaces the tail of the generated counts with the
// end counts verbatim, preserving each division's total weight.
func spliceEndCounts(lists [][]int, endCounts []int) ([][]int, error) {
	flat := flattenLists(lists)
	flatWeight := sequence.Weight(flat)
	endWeight := sequence.Weight(endCounts)
	if flatWeight < endWeight {
		return nil, fmt.Errorf("end counts weight %d exceeds generated weight %d", endWeight, flatWeight)
	}
	head, err := sequence.TruncateToWeight(flat, flatWeight-endWeight)
	if err != nil {
		return nil, fmt.Errorf("splice end counts: %w", err)
	}
	spliced := append(head, endCounts...)
	listWeights := make([]int, len(lists))
	for i, list := range lists {
		listWeights[i] = sequence.Weight(list)
	}
	return sequence.SplitByWeights(spliced, listWeights, false)
}

// countLogicalTies counts the logical ties a leaf builder would attach
// to the flattened entries: entries are grouped by the pattern's count
// weights (preamble once, then counts cyclically); an all-pitched
// group of two or more entries ties into one logical tie, every other
// entry stands alone. Entries replaced by end counts stay untied.
func countLogicalTies(flat []int, preamble, counts []int, endLen int) int {
	n := len(flat)
	if n == 0 {
		return 0
	}
	tied := make([]bool, n)
	weightIndex := 0
	nextWeight := func() int {
		var w int
		if weightIndex < len(preamble) {
			w = absInt(preamble[weightIndex])
		} else {
			w = absInt(counts[(weightIndex-len(preamble))%len(counts)])
		}
		weightIndex++
		return w
	}
	i := 0
	for i < n {
		target := nextWeight()
		if target == 0 {
			continue
		}
		start := i
		accumulated := 0
		for i < n && accumulated < target {
			accumulated += absInt(flat[i])
			i++
		}
		allPitched := true
		for j := start; j < i; j++ {
			if flat[j] < 0 {
				allPitched = false
				break
			}
		}
		if allPitched && i-start > 1 {
			for j := start; j < i-1; j++ {
				tied[j] = true
			}
		}
	}
	for j := n - endLen; j < n; j++ {
		if j-1 >= 0 {
			tied[j-1] = false
		}
	}
	ties := 0
	for idx := 0; idx < n; idx++ {
		if idx == 0 || !tied[idx-1] {
			ties++
		}
	}
	return ties
}

func flattenLists(lists [][]int) []int {
	var flat []int
	for _, list := range lists {
		flat = append(flat, list...)
	}
	return flat
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
