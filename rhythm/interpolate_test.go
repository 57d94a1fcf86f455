package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
)

func TestDefaultInterpolation(t *testing.T) {
	in := DefaultInterpolation()
	require.NoError(t, in.Validate())
	assert.Equal(t, duration.MustNew(1, 8), in.StartDuration)
	assert.Equal(t, duration.MustNew(1, 16), in.StopDuration)
	assert.Equal(t, duration.MustNew(1, 16), in.WrittenDuration)
}

func TestInterpolation_Reverse(t *testing.T) {
	in := DefaultInterpolation()
	rev := in.Reverse()
	assert.Equal(t, in.StartDuration, rev.StopDuration)
	assert.Equal(t, in.StopDuration, rev.StartDuration)
	assert.Equal(t, in.WrittenDuration, rev.WrittenDuration)
	assert.Equal(t, in, rev.Reverse())
}

func TestInterpolation_Validate(t *testing.T) {
	bad := Interpolation{
		StartDuration:   duration.MustNew(1, 8),
		StopDuration:    duration.Duration{},
		WrittenDuration: duration.MustNew(1, 16),
	}
	assert.Error(t, bad.Validate())

	negative := DefaultInterpolation()
	negative.StartDuration = duration.MustNew(-1, 8)
	assert.Error(t, negative.Validate())
}

func TestInterpolateDivide_CosineValues(t *testing.T) {
	got, err := InterpolateDivide(10, 5, 1, Cosine)
	require.NoError(t, err)

	want := []float64{4.798, 2.879, 1.326, 0.995}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-3)
	}
}

func TestInterpolateDivide_FlatCurve(t *testing.T) {
	got, err := InterpolateDivide(10, 1, 1, Exponent(1))
	require.NoError(t, err)

	require.Len(t, got, 10)
	for _, d := range got {
		assert.InDelta(t, 1.0, d, 1e-9)
	}
}

func TestInterpolateDivide_SumsToTotal(t *testing.T) {
	got, err := InterpolateDivide(0.5, 0.125, 0.0625, Cosine)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	sum := 0.0
	for _, d := range got {
		assert.Greater(t, d, 0.0)
		sum += d
	}
	assert.InDelta(t, 0.5, sum, 1e-9)
}

func TestInterpolateDivide_Accelerates(t *testing.T) {
	got, err := InterpolateDivide(1.0, 0.125, 0.0625, Cosine)
	require.NoError(t, err)
	require.Greater(t, len(got), 2)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i], got[i-1])
	}
}

func TestInterpolateDivide_Ritardando(t *testing.T) {
	got, err := InterpolateDivide(1.0, 0.0625, 0.125, Cosine)
	require.NoError(t, err)
	require.Greater(t, len(got), 2)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}
}

func TestInterpolateDivide_Exponential(t *testing.T) {
	got, err := InterpolateDivide(1.0, 0.125, 0.0625, Exponent(1))
	require.NoError(t, err)
	sum := 0.0
	for _, d := range got {
		sum += d
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestInterpolateDivide_TooSmall(t *testing.T) {
	_, err := InterpolateDivide(0.1, 0.25, 0.25, Cosine)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestInterpolateDivide_InvalidArguments(t *testing.T) {
	_, err := InterpolateDivide(0, 0.25, 0.25, Cosine)
	assert.Error(t, err)
	_, err = InterpolateDivide(1, -0.25, 0.25, Cosine)
	assert.Error(t, err)
	_, err = InterpolateDivide(1, 0.25, 0, Cosine)
	assert.Error(t, err)
}
