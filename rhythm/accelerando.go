package rhythm

import (
	"errors"
	"fmt"
	"math"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
)

// quantizeDenominator is the grid the float interpolation is snapped
// to before the final exact correction.
const quantizeDenominator = 1024

// AccelerandoResult is the output of the accelerando generator.
type AccelerandoResult struct {
	// Maps holds one numeric map per division. All entries are pitched;
	// within a division they sum exactly to the division.
	Maps []NumericMap

	// Divisions echoes the input divisions.
	Divisions []duration.Duration

	// Exact reports, per division, whether the curve fit: false means
	// the division was too small for the interpolation and was emitted
	// as a single undivided event.
	Exact []bool

	// State is the updated accounting state.
	State State
}

// AccelerandoConfig holds the optional parameters of the accelerando
// generator.
type AccelerandoConfig struct {
	// Exponent selects the easing curve; the zero value is cosine.
	Exponent Exponent
}

// Accelerando fills each division with pitched events whose durations
// ease from the interpolation's start duration to its stop duration.
// Interpolations are read cyclically across divisions, offset by the
// divisions already consumed in the previous state. A division too
// small to hold the curve degenerates to a single event covering the
// whole division.
func Accelerando(divisions []duration.Duration, interpolations []Interpolation, cfg AccelerandoConfig, previous State) (*AccelerandoResult, error) {
	if len(interpolations) == 0 {
		interpolations = []Interpolation{DefaultInterpolation()}
	}
	for i, in := range interpolations {
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("interpolation %d: %w", i, err)
		}
	}
	if err := validateDivisions(divisions); err != nil {
		return nil, err
	}
	if cfg.Exponent < 0 {
		return nil, fmt.Errorf("exponent must be nonnegative, got %v", float64(cfg.Exponent))
	}

	maps := make([]NumericMap, len(divisions))
	exact := make([]bool, len(divisions))
	ties := 0
	for i, division := range divisions {
		in := interpolations[(i+previous.DivisionsConsumed)%len(interpolations)]
		entries, fit, err := accelerandoEntries(division, in, cfg.Exponent)
		if err != nil {
			return nil, fmt.Errorf("division %d: %w", i, err)
		}
		maps[i] = entries
		exact[i] = fit
		ties += len(entries)
	}

	next := State{
		DivisionsConsumed:   previous.DivisionsConsumed + len(divisions),
		TaleaWeightConsumed: previous.TaleaWeightConsumed,
		LogicalTiesProduced: previous.LogicalTiesProduced + ties,
		IncompleteLastNote:  false,
	}
	if previous.IncompleteLastNote {
		next.LogicalTiesProduced--
	}
	echoed := append([]duration.Duration{}, divisions...)
	return &AccelerandoResult{Maps: maps, Divisions: echoed, Exact: exact, State: next}, nil
}

// accelerandoEntries interpolates one division, quantizes the floats
// onto the 1/1024 grid, then corrects the last entry so the entries sum
// to the division exactly.
func accelerandoEntries(division duration.Duration, in Interpolation, exponent Exponent) (NumericMap, bool, error) {
	floats, err := InterpolateDivide(
		division.Float64(),
		in.StartDuration.Float64(),
		in.StopDuration.Float64(),
		exponent,
	)
	if err != nil {
		if errors.Is(err, ErrTooSmall) {
			return NumericMap{division}, false, nil
		}
		return nil, false, err
	}

	entries := make(NumericMap, len(floats))
	partial := duration.FromInt(0)
	for i, f := range floats[:len(floats)-1] {
		numerator := int(math.Round(f * quantizeDenominator))
		if numerator < 1 {
			numerator = 1
		}
		entries[i] = duration.Duration{Numerator: numerator, Denominator: quantizeDenominator}
		partial = partial.Add(entries[i])
	}
	last := division.Sub(partial)
	if last.Sign() <= 0 {
		return nil, false, fmt.Errorf("quantization left no room for the final event in %s", division)
	}
	entries[len(entries)-1] = last
	return entries, true, nil
}
