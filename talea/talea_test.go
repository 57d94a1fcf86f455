package talea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
)

func TestTalea_Validate(t *testing.T) {
	tests := []struct {
		name    string
		talea   Talea
		wantErr bool
	}{
		{
			name:  "valid",
			talea: Talea{Counts: []int{1, 2, -3, 4}, Denominator: 16},
		},
		{
			name:  "valid with preamble and end counts",
			talea: Talea{Counts: []int{2, 1}, Denominator: 8, Preamble: []int{1, 1}, EndCounts: []int{1, 1}},
		},
		{
			name:    "empty counts",
			talea:   Talea{Denominator: 16},
			wantErr: true,
		},
		{
			name:    "denominator not a power of two",
			talea:   Talea{Counts: []int{1}, Denominator: 12},
			wantErr: true,
		},
		{
			name:  "fill sentinel",
			talea: Talea{Counts: []int{1, FillNotes, 1}, Denominator: 16},
		},
		{
			name:    "fill sentinel with preamble",
			talea:   Talea{Counts: []int{FillRests, 1}, Denominator: 16, Preamble: []int{1}},
			wantErr: true,
		},
		{
			name:    "two fill sentinels",
			talea:   Talea{Counts: []int{FillNotes, FillRests}, Denominator: 16},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.talea.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTalea_Period(t *testing.T) {
	assert.Equal(t, 10, Talea{Counts: []int{1, 2, 3, 4}, Denominator: 16}.Period())

	// Rests make no difference.
	assert.Equal(t, 10, Talea{Counts: []int{1, 2, -3, 4}, Denominator: 16}.Period())

	// Denominator makes no difference.
	assert.Equal(t, 10, Talea{Counts: []int{1, 2, -3, 4}, Denominator: 32}.Period())

	// Preamble makes no difference.
	assert.Equal(t, 10, Talea{Counts: []int{1, 2, -3, 4}, Denominator: 32, Preamble: []int{1, 1, 1}}.Period())
}

func TestTalea_Contains_WithPreamble(t *testing.T) {
	pattern := Talea{Counts: []int{10}, Denominator: 16, Preamble: []int{1, -1, 1}}

	contained := map[int]bool{1: true, 2: true, 3: true, 13: true, 23: true}
	for position := 1; position <= 23; position++ {
		assert.Equal(t, contained[position], pattern.Contains(position), "position %d", position)
	}
	assert.False(t, pattern.Contains(0))
	assert.False(t, pattern.Contains(-5))
}

func TestTalea_Contains_PeriodRelative(t *testing.T) {
	base := Talea{Counts: []int{1, 2, 3, 4}, Denominator: 16}
	respelled := Talea{Counts: []int{1, 2, 3, 4}, Denominator: 32}
	for position := 1; position <= 30; position++ {
		assert.Equal(t, base.Contains(position), respelled.Contains(position), "position %d", position)
	}
}

func TestTalea_At(t *testing.T) {
	pattern := Talea{Counts: []int{2, 1, 3, 2, 4, 1, 1}, Denominator: 16, Preamble: []int{1, 1, 1, 1}}

	count, denominator := pattern.At(0)
	assert.Equal(t, 1, count)
	assert.Equal(t, 16, denominator)

	count, _ = pattern.At(4)
	assert.Equal(t, 2, count)

	// Wraps cyclically.
	count, _ = pattern.At(11)
	assert.Equal(t, 1, count)

	// Negative indexes wrap backwards.
	count, _ = pattern.At(-1)
	assert.Equal(t, 1, count)
}

func TestTalea_Slice(t *testing.T) {
	pattern := Talea{Counts: []int{2, 1, 3, 2, 4, 1, 1}, Denominator: 16, Preamble: []int{1, 1, 1, 1}}

	pairs := pattern.Slice(2, 8)
	want := [][2]int{{1, 16}, {1, 16}, {2, 16}, {1, 16}, {3, 16}, {2, 16}}
	assert.Equal(t, want, pairs)

	assert.Nil(t, pattern.Slice(3, 3))
}

func TestTalea_Durations(t *testing.T) {
	pattern := Talea{Counts: []int{16, -4, 16}, Denominator: 16, Preamble: []int{1}}
	durations, err := pattern.Durations()
	require.NoError(t, err)
	want := []duration.Duration{
		{Numerator: 1, Denominator: 16},
		{Numerator: 16, Denominator: 16},
		{Numerator: -4, Denominator: 16},
		{Numerator: 16, Denominator: 16},
	}
	assert.Equal(t, want, durations)

	_, err = Talea{Counts: []int{FillNotes}, Denominator: 16}.Durations()
	assert.Error(t, err)
}

func TestTalea_Advance(t *testing.T) {
	pattern := Talea{Counts: []int{2, 1, 3, 2, 4, 1, 1}, Denominator: 16, Preamble: []int{1, 1, 1, 1}}

	tests := []struct {
		weight       int
		wantPreamble []int
	}{
		{weight: 0, wantPreamble: []int{1, 1, 1, 1}},
		{weight: 1, wantPreamble: []int{1, 1, 1}},
		{weight: 2, wantPreamble: []int{1, 1}},
		{weight: 3, wantPreamble: []int{1}},
		{weight: 4, wantPreamble: nil},
		{weight: 5, wantPreamble: []int{1, 1, 3, 2, 4, 1, 1}},
		{weight: 6, wantPreamble: []int{1, 3, 2, 4, 1, 1}},
		{weight: 7, wantPreamble: []int{3, 2, 4, 1, 1}},
		{weight: 8, wantPreamble: []int{2, 2, 4, 1, 1}},
	}
	for _, tt := range tests {
		advanced, err := pattern.Advance(tt.weight)
		require.NoError(t, err, "weight %d", tt.weight)
		assert.Equal(t, pattern.Counts, advanced.Counts, "weight %d", tt.weight)
		if len(tt.wantPreamble) == 0 {
			assert.Empty(t, advanced.Preamble, "weight %d", tt.weight)
		} else {
			assert.Equal(t, tt.wantPreamble, advanced.Preamble, "weight %d", tt.weight)
		}
	}
}

func TestTalea_Advance_ByPeriod(t *testing.T) {
	pattern := Talea{Counts: []int{1, 2, 3, 4}, Denominator: 16}

	advanced, err := pattern.Advance(10)
	require.NoError(t, err)
	assert.Equal(t, pattern.Counts, advanced.Counts)
	assert.Empty(t, advanced.Preamble)

	advanced, err = pattern.Advance(20)
	require.NoError(t, err)
	assert.Equal(t, pattern.Counts, advanced.Counts)
	assert.Empty(t, advanced.Preamble)
}

func TestTalea_Advance_NegativeWeight(t *testing.T) {
	pattern := Talea{Counts: []int{1, 2}, Denominator: 16}
	_, err := pattern.Advance(-1)
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestTalea_Advance_SplitsCountAcrossBoundary(t *testing.T) {
	// Consuming one unit into a rest keeps the rest's remainder.
	pattern := Talea{Counts: []int{-2, 3}, Denominator: 8}
	advanced, err := pattern.Advance(1)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 3}, advanced.Preamble)
	assert.Equal(t, []int{-2, 3}, advanced.Counts)
}
