package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abjad/abjad-ext-rmakers-sub000/config"
)

func TestRenderScore_Talea(t *testing.T) {
	score := &config.Score{
		Name:      "etude",
		Divisions: []string{"3/8", "4/8", "3/8", "4/8"},
		Maker: config.Maker{
			Kind:  config.KindTalea,
			Talea: &config.TaleaParams{Counts: []int{1, 2, 3, 4}, Denominator: 16},
		},
	}

	result, err := renderScore(score)
	require.NoError(t, err)

	assert.Equal(t, "etude", result.Name)
	assert.Equal(t, config.KindTalea, result.Kind)
	assert.Equal(t, []string{"6/16", "8/16", "6/16", "8/16"}, result.Divisions)
	assert.Equal(t, [][]string{
		{"1/16", "2/16", "3/16"},
		{"4/16", "1/16", "2/16", "1/16"},
		{"2/16", "4/16"},
		{"1/16", "2/16", "3/16", "2/16"},
	}, result.Maps)
	require.NotNil(t, result.State)
	assert.Equal(t, 4, result.State.DivisionsConsumed)
	assert.Equal(t, 28, result.State.TaleaWeightConsumed)
}

func TestRenderScore_Meter(t *testing.T) {
	score := &config.Score{
		Name:      "grouped",
		Divisions: []string{"3/8", "3/8"},
		Maker: config.Maker{
			Kind:  config.KindTalea,
			Talea: &config.TaleaParams{Counts: []int{1}, Denominator: 8},
		},
		Meter: []string{"2/8", "4/8"},
	}

	result, err := renderScore(score)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1/8", "1/8"},
		{"1/8", "1/8", "1/8", "1/8"},
	}, result.Groups)
}

func TestRenderScore_Incised(t *testing.T) {
	score := &config.Score{
		Name:      "incised",
		Divisions: []string{"5/8"},
		Maker: config.Maker{
			Kind: config.KindIncised,
			Incised: &config.IncisedParams{
				PrefixTalea:  []int{-1},
				PrefixCounts: []int{1},
				SuffixTalea:  []int{-1},
				SuffixCounts: []int{1},
				Denominator:  8,
			},
		},
	}

	result, err := renderScore(score)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"-1/8", "3/8", "-1/8"}}, result.Maps)
	assert.Nil(t, result.State)
}

func TestRenderScore_Accelerando(t *testing.T) {
	score := &config.Score{
		Name:      "accel",
		Divisions: []string{"1/2"},
		Maker: config.Maker{
			Kind:        config.KindAccelerando,
			Accelerando: &config.AccelerandoParams{},
		},
	}

	result, err := renderScore(score)
	require.NoError(t, err)
	require.Len(t, result.Maps, 1)
	assert.Greater(t, len(result.Maps[0]), 2)
	require.NotNil(t, result.State)
	assert.Equal(t, 1, result.State.DivisionsConsumed)
}

func TestRunRender_WritesEnvelope(t *testing.T) {
	tmpDir := t.TempDir()
	scorePath := filepath.Join(tmpDir, "etude.yaml")
	content := `
divisions: ["3/8", "4/8"]
maker:
  kind: talea
  talea:
    counts: [1, 2, 3, 4]
    denominator: 16
`
	require.NoError(t, os.WriteFile(scorePath, []byte(content), 0o644))
	outPath := filepath.Join(tmpDir, "out.json")

	err := runRender(filepath.Join(tmpDir, "*.yaml"), outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var envelope renderEnvelope
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.NotEmpty(t, envelope.RunID)
	require.Len(t, envelope.Scores, 1)
	assert.Equal(t, "etude", envelope.Scores[0].Name)
}

func TestRunRender_NoScores(t *testing.T) {
	err := runRender(filepath.Join(t.TempDir(), "*.yaml"), "")
	assert.Error(t, err)
}
