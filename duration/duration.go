// Package duration provides exact rational durations.
//
// Duration is the common currency of the rhythm engine: divisions,
// pattern weights and numeric-map entries are all expressed as signed
// rationals with explicit, non-reduced denominators. All arithmetic is
// exact integer arithmetic; nothing in this package touches floating
// point.
package duration

import "fmt"

// Duration is a signed rational number with an explicit denominator.
// The denominator is always positive; the sign lives on the numerator.
// Durations are not reduced automatically: Duration{4, 8} and
// Duration{1, 2} are equal in value but keep their own spellings.
type Duration struct {
	Numerator   int
	Denominator int
}

// New returns a duration with a normalized positive denominator.
// Returns an error if the denominator is zero.
func New(numerator, denominator int) (Duration, error) {
	if denominator == 0 {
		return Duration{}, fmt.Errorf("denominator must be nonzero")
	}
	if denominator < 0 {
		numerator = -numerator
		denominator = -denominator
	}
	return Duration{Numerator: numerator, Denominator: denominator}, nil
}

// MustNew is New, panicking on a zero denominator.
// Use for known-good literals.
func MustNew(numerator, denominator int) Duration {
	d, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInt returns the duration n/1.
func FromInt(n int) Duration {
	return Duration{Numerator: n, Denominator: 1}
}

// Reduce returns the duration in lowest terms.
func (d Duration) Reduce() Duration {
	if d.Numerator == 0 {
		return Duration{Numerator: 0, Denominator: 1}
	}
	g := gcd(abs(d.Numerator), d.Denominator)
	return Duration{Numerator: d.Numerator / g, Denominator: d.Denominator / g}
}

// Add returns d + other. The result keeps the least common denominator
// of the two operands' spellings.
func (d Duration) Add(other Duration) Duration {
	l := lcm(d.Denominator, other.Denominator)
	n := d.Numerator*(l/d.Denominator) + other.Numerator*(l/other.Denominator)
	return Duration{Numerator: n, Denominator: l}
}

// Sub returns d - other.
func (d Duration) Sub(other Duration) Duration {
	return d.Add(other.Neg())
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return Duration{Numerator: -d.Numerator, Denominator: d.Denominator}
}

// Abs returns the magnitude of d.
func (d Duration) Abs() Duration {
	if d.Numerator < 0 {
		return d.Neg()
	}
	return d
}

// Sign returns -1, 0 or 1.
func (d Duration) Sign() int {
	switch {
	case d.Numerator < 0:
		return -1
	case d.Numerator > 0:
		return 1
	}
	return 0
}

// IsZero reports whether d equals zero.
func (d Duration) IsZero() bool {
	return d.Numerator == 0
}

// Cmp compares d and other by value, returning -1, 0 or 1. Operands
// are reduced before cross-multiplying to keep the products small.
func (d Duration) Cmp(other Duration) int {
	a, b := d.Reduce(), other.Reduce()
	left := a.Numerator * b.Denominator
	right := b.Numerator * a.Denominator
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}

// Equal reports whether d and other have the same value, regardless of
// spelling.
func (d Duration) Equal(other Duration) bool {
	return d.Cmp(other) == 0
}

// Less reports whether d < other.
func (d Duration) Less(other Duration) bool {
	return d.Cmp(other) < 0
}

// Float64 returns the floating-point value of d. Only the
// interpolation curve generator should need this.
func (d Duration) Float64() float64 {
	return float64(d.Numerator) / float64(d.Denominator)
}

// WithDenominator respells d over the given denominator.
// Returns an error if d cannot be expressed exactly over it.
func (d Duration) WithDenominator(denominator int) (Duration, error) {
	if denominator <= 0 {
		return Duration{}, fmt.Errorf("denominator must be positive, got %d", denominator)
	}
	r := d.Reduce()
	if denominator%r.Denominator != 0 {
		return Duration{}, fmt.Errorf("cannot respell %s over denominator %d", d, denominator)
	}
	factor := denominator / r.Denominator
	return Duration{Numerator: r.Numerator * factor, Denominator: denominator}, nil
}

// String formats d as "n/d".
func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.Numerator, d.Denominator)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Rescale expresses every duration over the least common denominator
// of the (reduced) durations and any extra denominators, returning the
// rescaled values and the common denominator.
func Rescale(durations []Duration, extraDenominators ...int) ([]Duration, int, error) {
	lcd := 1
	for _, d := range durations {
		lcd = lcm(lcd, d.Reduce().Denominator)
	}
	for _, den := range extraDenominators {
		if den <= 0 {
			return nil, 0, fmt.Errorf("denominator must be positive, got %d", den)
		}
		lcd = lcm(lcd, den)
	}
	rescaled := make([]Duration, len(durations))
	for i, d := range durations {
		respelled, err := d.WithDenominator(lcd)
		if err != nil {
			return nil, 0, err
		}
		rescaled[i] = respelled
	}
	return rescaled, lcd, nil
}

// Sum returns the exact sum of durations, or 0/1 for an empty slice.
func Sum(durations []Duration) Duration {
	total := Duration{Numerator: 0, Denominator: 1}
	for _, d := range durations {
		total = total.Add(d)
	}
	return total
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
