package rhythm

import (
	"fmt"
	"math"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
)

// Exponent selects the easing curve for interpolated division. The
// zero value selects cosine easing; any positive value selects
// exponential easing with that exponent.
type Exponent float64

// Cosine is the default easing curve.
const Cosine Exponent = 0

// Interpolation describes one accelerando or ritardando gesture: event
// durations slide from StartDuration to StopDuration while every event
// is written as WrittenDuration.
type Interpolation struct {
	StartDuration   duration.Duration `json:"start_duration" yaml:"start_duration"`
	StopDuration    duration.Duration `json:"stop_duration" yaml:"stop_duration"`
	WrittenDuration duration.Duration `json:"written_duration" yaml:"written_duration"`
}

// DefaultInterpolation is an accelerando from eighths to sixteenths
// written as sixteenths.
func DefaultInterpolation() Interpolation {
	return Interpolation{
		StartDuration:   duration.MustNew(1, 8),
		StopDuration:    duration.MustNew(1, 16),
		WrittenDuration: duration.MustNew(1, 16),
	}
}

// Reverse swaps the start and stop durations, turning an accelerando
// into the corresponding ritardando.
func (in Interpolation) Reverse() Interpolation {
	return Interpolation{
		StartDuration:   in.StopDuration,
		StopDuration:    in.StartDuration,
		WrittenDuration: in.WrittenDuration,
	}
}

// Validate checks that all three durations are positive.
func (in Interpolation) Validate() error {
	for _, pair := range []struct {
		name string
		d    duration.Duration
	}{
		{"start duration", in.StartDuration},
		{"stop duration", in.StopDuration},
		{"written duration", in.WrittenDuration},
	} {
		if pair.d.Denominator == 0 || pair.d.Sign() <= 0 {
			return fmt.Errorf("%s must be positive, got %s", pair.name, pair.d)
		}
	}
	return nil
}

// InterpolateDivide fills totalDuration with event durations easing
// from startDuration to stopDuration. The raw eased durations are
// rescaled so they sum to totalDuration exactly in floating point;
// quantization to exact rationals happens in the caller. Returns
// ErrTooSmall when the total cannot hold even one start plus one stop
// event.
func InterpolateDivide(totalDuration, startDuration, stopDuration float64, exponent Exponent) ([]float64, error) {
	if totalDuration <= 0 {
		return nil, fmt.Errorf("total duration must be positive, got %v", totalDuration)
	}
	if startDuration <= 0 || stopDuration <= 0 {
		return nil, fmt.Errorf("start and stop durations must be positive, got %v and %v",
			startDuration, stopDuration)
	}
	if totalDuration < startDuration+stopDuration {
		return nil, fmt.Errorf("%w: total %v is less than start %v plus stop %v",
			ErrTooSmall, totalDuration, startDuration, stopDuration)
	}
	var durations []float64
	accumulated := 0.0
	for accumulated < totalDuration {
		mu := accumulated / totalDuration
		durations = append(durations, interpolateAt(startDuration, stopDuration, mu, exponent))
		accumulated += durations[len(durations)-1]
	}

	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	factor := totalDuration / sum
	for i := range durations {
		durations[i] *= factor
	}
	return durations, nil
}

// interpolateAt eases between y1 and y2 at position mu in [0, 1].
func interpolateAt(y1, y2, mu float64, exponent Exponent) float64 {
	if exponent == Cosine {
		mu2 := (1 - math.Cos(mu*math.Pi)) / 2
		return y1*(1-mu2) + y2*mu2
	}
	mu2 := math.Pow(mu, float64(exponent))
	return y1*(1-mu2) + y2*mu2
}
