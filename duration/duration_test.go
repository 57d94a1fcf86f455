package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesSign(t *testing.T) {
	d, err := New(3, -8)
	require.NoError(t, err)
	assert.Equal(t, Duration{Numerator: -3, Denominator: 8}, d)

	_, err = New(1, 0)
	assert.Error(t, err)
}

func TestDuration_Arithmetic(t *testing.T) {
	a := MustNew(3, 8)
	b := MustNew(1, 16)

	sum := a.Add(b)
	assert.Equal(t, Duration{Numerator: 7, Denominator: 16}, sum)

	diff := a.Sub(b)
	assert.Equal(t, Duration{Numerator: 5, Denominator: 16}, diff)

	assert.Equal(t, Duration{Numerator: -3, Denominator: 8}, a.Neg())
	assert.Equal(t, a, a.Neg().Abs())
}

func TestDuration_ComparisonIgnoresSpelling(t *testing.T) {
	assert.True(t, MustNew(4, 8).Equal(MustNew(1, 2)))
	assert.True(t, MustNew(1, 4).Less(MustNew(3, 8)))
	assert.Equal(t, 0, MustNew(-2, 4).Cmp(MustNew(-1, 2)))
}

func TestDuration_ComparisonSurvivesHugeSpellings(t *testing.T) {
	// Cross-multiplying these spellings raw would overflow; reducing
	// first keeps the products in range.
	huge := MustNew(3<<31, 1<<31)
	one := MustNew(1<<31, 1<<31)
	assert.Equal(t, 1, huge.Cmp(one))
	assert.True(t, one.Less(huge))
	assert.True(t, huge.Equal(MustNew(3, 1)))
}

func TestDuration_Reduce(t *testing.T) {
	assert.Equal(t, Duration{Numerator: 1, Denominator: 2}, MustNew(4, 8).Reduce())
	assert.Equal(t, Duration{Numerator: -3, Denominator: 4}, MustNew(-6, 8).Reduce())
	assert.Equal(t, Duration{Numerator: 0, Denominator: 1}, MustNew(0, 16).Reduce())
}

func TestDuration_WithDenominator(t *testing.T) {
	d, err := MustNew(3, 8).WithDenominator(16)
	require.NoError(t, err)
	assert.Equal(t, Duration{Numerator: 6, Denominator: 16}, d)

	_, err = MustNew(1, 8).WithDenominator(12)
	assert.Error(t, err)
}

func TestRescale(t *testing.T) {
	divisions := []Duration{MustNew(3, 8), MustNew(4, 8)}
	rescaled, lcd, err := Rescale(divisions, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, lcd)
	assert.Equal(t, []Duration{
		{Numerator: 6, Denominator: 16},
		{Numerator: 8, Denominator: 16},
	}, rescaled)
}

func TestRescale_ReducesBeforeComputingLCD(t *testing.T) {
	// 4/8 reduces to 1/2, so the common denominator with 16 is 16, not 8.
	rescaled, lcd, err := Rescale([]Duration{MustNew(4, 8)}, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, lcd)
	assert.Equal(t, Duration{Numerator: 8, Denominator: 16}, rescaled[0])
}

func TestSum(t *testing.T) {
	total := Sum([]Duration{MustNew(1, 16), MustNew(2, 16), MustNew(-3, 16)})
	assert.True(t, total.IsZero())

	assert.Equal(t, Duration{Numerator: 0, Denominator: 1}, Sum(nil))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 1024} {
		assert.True(t, IsPowerOfTwo(n), "n=%d", n)
	}
	for _, n := range []int{0, -2, 3, 6, 12} {
		assert.False(t, IsPowerOfTwo(n), "n=%d", n)
	}
}
