package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Abjad/abjad-ext-rmakers-sub000/config"
	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
	"github.com/Abjad/abjad-ext-rmakers-sub000/partition"
	"github.com/Abjad/abjad-ext-rmakers-sub000/rhythm"
)

// renderEnvelope is the JSON document written for one render run.
type renderEnvelope struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Scores      []scoreResult `json:"scores"`
}

// scoreResult is the rendered output of one score.
type scoreResult struct {
	Name      string                 `json:"name"`
	Kind      string                 `json:"kind"`
	Divisions []string               `json:"divisions"`
	Maps      [][]string             `json:"maps"`
	Groups    [][]string             `json:"groups,omitempty"`
	Spelling  *config.SpellingParams `json:"spelling,omitempty"`
	State     *rhythm.State          `json:"state,omitempty"`
}

func renderCmd() *cobra.Command {
	var (
		pattern string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render scores into duration lists",
		Long: `Render loads every score matching the pattern, runs its generator
and writes one JSON envelope with the rendered durations, optional
meter groups and the updated state of each stateful generator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(pattern, output)
		},
	}

	cmd.Flags().StringVarP(&pattern, "scores", "s", "*.yaml", "Score file glob (doublestar patterns supported)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func validateCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate scores without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(slog.Default())
			scores, err := loader.LoadGlob(pattern)
			if err != nil {
				return err
			}
			fmt.Printf("%d score(s) valid\n", len(scores))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "scores", "s", "*.yaml", "Score file glob (doublestar patterns supported)")

	return cmd
}

func runRender(pattern, output string) error {
	loader := config.NewLoader(slog.Default())
	scores, err := loader.LoadGlob(pattern)
	if err != nil {
		return err
	}

	envelope := renderEnvelope{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, score := range scores {
		result, err := renderScore(score)
		if err != nil {
			return fmt.Errorf("render %s: %w", score.Name, err)
		}
		envelope.Scores = append(envelope.Scores, *result)
		slog.Info("Rendered score",
			slog.String("name", score.Name),
			slog.String("kind", score.Maker.Kind),
			slog.Int("divisions", len(result.Divisions)))
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Wrote render output", slog.String("path", output), slog.String("run_id", envelope.RunID))
	return nil
}

func renderScore(score *config.Score) (*scoreResult, error) {
	divs, err := config.ParseDurations(score.Divisions)
	if err != nil {
		return nil, err
	}
	previous := rhythm.State{}
	if score.State != nil {
		previous = *score.State
	}

	result := &scoreResult{Name: score.Name, Kind: score.Maker.Kind, Spelling: score.Spelling}
	var maps []rhythm.NumericMap
	var adjusted []duration.Duration

	switch score.Maker.Kind {
	case config.KindTalea:
		params := score.Maker.Talea
		pattern, err := params.Pattern()
		if err != nil {
			return nil, err
		}
		out, err := rhythm.Talea(divs, pattern, params.Config(), previous)
		if err != nil {
			return nil, err
		}
		maps, adjusted = out.Maps, out.Divisions
		state := out.State
		result.State = &state
	case config.KindIncised:
		params := score.Maker.Incised
		out, err := rhythm.Incised(divs, params.Incise(), params.ExtraCounts)
		if err != nil {
			return nil, err
		}
		maps, adjusted = out.Maps, out.Divisions
	case config.KindAccelerando:
		params := score.Maker.Accelerando
		interpolations, err := params.Parse()
		if err != nil {
			return nil, err
		}
		cfg := rhythm.AccelerandoConfig{Exponent: rhythm.Exponent(params.Exponent)}
		out, err := rhythm.Accelerando(divs, interpolations, cfg, previous)
		if err != nil {
			return nil, err
		}
		maps, adjusted = out.Maps, out.Divisions
		state := out.State
		result.State = &state
	default:
		return nil, fmt.Errorf("unknown maker kind %q", score.Maker.Kind)
	}

	result.Divisions = formatDurations(adjusted)
	result.Maps = make([][]string, len(maps))
	for i, m := range maps {
		result.Maps[i] = formatDurations(m)
	}

	if len(score.Meter) > 0 {
		targets, err := config.ParseDurations(score.Meter)
		if err != nil {
			return nil, err
		}
		var flat []duration.Duration
		for _, m := range maps {
			flat = append(flat, m...)
		}
		groups, err := partition.Groups(flat, targets)
		if err != nil {
			return nil, fmt.Errorf("meter: %w", err)
		}
		result.Groups = make([][]string, len(groups))
		for i, g := range groups {
			result.Groups[i] = formatDurations(g)
		}
	}
	return result, nil
}

func formatDurations(durations []duration.Duration) []string {
	out := make([]string, len(durations))
	for i, d := range durations {
		out[i] = d.String()
	}
	return out
}
