// Package config loads rhythm score specifications from YAML.
//
// A score names its divisions as "n/d" strings, selects one generator
// and carries that generator's parameters, plus optional meter targets
// for grouping and an optional previous state for resumed generation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
	"github.com/Abjad/abjad-ext-rmakers-sub000/rhythm"
	"github.com/Abjad/abjad-ext-rmakers-sub000/talea"
)

// Generator kinds accepted in a score's maker block.
const (
	KindTalea       = "talea"
	KindIncised     = "incised"
	KindAccelerando = "accelerando"
)

// Score is one rhythm generation request.
type Score struct {
	// Name identifies the score in output and logs.
	Name string `yaml:"name"`

	// Divisions are the target durations, each "n/d" or a plain integer.
	Divisions []string `yaml:"divisions"`

	// Maker selects and parameterizes the generator.
	Maker Maker `yaml:"maker"`

	// Meter, when non-empty, groups the generated durations against
	// these target spans.
	Meter []string `yaml:"meter"`

	// Spelling carries duration-spelling constraints for the
	// downstream leaf builder; the generators pass it through.
	Spelling *SpellingParams `yaml:"spelling"`

	// State resumes a previous generation run; nil starts fresh.
	State *rhythm.State `yaml:"state"`
}

// SpellingParams is the score-level spelling block in "n/d" strings.
type SpellingParams struct {
	ForbiddenNote     string `yaml:"forbidden_note" json:"forbidden_note,omitempty"`
	ForbiddenRest     string `yaml:"forbidden_rest" json:"forbidden_rest,omitempty"`
	IncreaseMonotonic bool   `yaml:"increase_monotonic" json:"increase_monotonic,omitempty"`
}

// Parse converts the block into a spelling value.
func (p *SpellingParams) Parse() (rhythm.Spelling, error) {
	var spelling rhythm.Spelling
	if p.ForbiddenNote != "" {
		d, err := ParseDuration(p.ForbiddenNote)
		if err != nil {
			return rhythm.Spelling{}, fmt.Errorf("spelling.forbidden_note: %w", err)
		}
		spelling.ForbiddenNoteDuration = &d
	}
	if p.ForbiddenRest != "" {
		d, err := ParseDuration(p.ForbiddenRest)
		if err != nil {
			return rhythm.Spelling{}, fmt.Errorf("spelling.forbidden_rest: %w", err)
		}
		spelling.ForbiddenRestDuration = &d
	}
	spelling.IncreaseMonotonic = p.IncreaseMonotonic
	if err := spelling.Validate(); err != nil {
		return rhythm.Spelling{}, fmt.Errorf("spelling: %w", err)
	}
	return spelling, nil
}

// Maker holds the generator selection. Exactly the block matching Kind
// must be present.
type Maker struct {
	Kind        string             `yaml:"kind"`
	Talea       *TaleaParams       `yaml:"talea"`
	Incised     *IncisedParams     `yaml:"incised"`
	Accelerando *AccelerandoParams `yaml:"accelerando"`
}

// TaleaParams parameterizes the talea generator.
type TaleaParams struct {
	Counts       []int  `yaml:"counts"`
	Denominator  int    `yaml:"denominator"`
	Preamble     []int  `yaml:"preamble"`
	EndCounts    []int  `yaml:"end_counts"`
	ExtraCounts  []int  `yaml:"extra_counts"`
	ReadOnceOnly bool   `yaml:"read_once_only"`
	Advance      int    `yaml:"advance"`
	Fill         string `yaml:"fill"`
}

// IncisedParams parameterizes the incised builder.
type IncisedParams struct {
	PrefixTalea        []int `yaml:"prefix_talea"`
	PrefixCounts       []int `yaml:"prefix_counts"`
	SuffixTalea        []int `yaml:"suffix_talea"`
	SuffixCounts       []int `yaml:"suffix_counts"`
	Denominator        int   `yaml:"denominator"`
	BodyRatio          []int `yaml:"body_ratio"`
	FillWithRests      bool  `yaml:"fill_with_rests"`
	OuterDivisionsOnly bool  `yaml:"outer_divisions_only"`
	ExtraCounts        []int `yaml:"extra_counts"`
}

// AccelerandoParams parameterizes the accelerando generator.
type AccelerandoParams struct {
	Interpolations []InterpolationParams `yaml:"interpolations"`
	Exponent       float64               `yaml:"exponent"`
}

// InterpolationParams is one interpolation gesture in "n/d" strings.
type InterpolationParams struct {
	Start   string `yaml:"start"`
	Stop    string `yaml:"stop"`
	Written string `yaml:"written"`
}

// ParseDuration parses "n/d" or a plain integer into a duration.
func ParseDuration(s string) (duration.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return duration.Duration{}, fmt.Errorf("empty duration")
	}
	numerator, denominator := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		numerator, denominator = s[:i], s[i+1:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(numerator))
	if err != nil {
		return duration.Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(denominator))
	if err != nil {
		return duration.Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return duration.New(n, d)
}

// ParseDurations parses a slice of duration strings.
func ParseDurations(strs []string) ([]duration.Duration, error) {
	out := make([]duration.Duration, len(strs))
	for i, s := range strs {
		d, err := ParseDuration(s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Validate checks the score invariants without running a generator.
func (s *Score) Validate() error {
	if len(s.Divisions) == 0 {
		return fmt.Errorf("divisions are required")
	}
	if _, err := ParseDurations(s.Divisions); err != nil {
		return fmt.Errorf("divisions: %w", err)
	}
	if _, err := ParseDurations(s.Meter); err != nil {
		return fmt.Errorf("meter: %w", err)
	}
	if s.Spelling != nil {
		if _, err := s.Spelling.Parse(); err != nil {
			return err
		}
	}
	switch s.Maker.Kind {
	case KindTalea:
		if s.Maker.Talea == nil {
			return fmt.Errorf("maker.talea block is required for kind %q", KindTalea)
		}
		pattern, err := s.Maker.Talea.Pattern()
		if err != nil {
			return err
		}
		if err := pattern.Validate(); err != nil {
			return fmt.Errorf("maker.talea: %w", err)
		}
	case KindIncised:
		if s.Maker.Incised == nil {
			return fmt.Errorf("maker.incised block is required for kind %q", KindIncised)
		}
		if err := s.Maker.Incised.Incise().Validate(); err != nil {
			return fmt.Errorf("maker.incised: %w", err)
		}
	case KindAccelerando:
		if s.Maker.Accelerando == nil {
			return fmt.Errorf("maker.accelerando block is required for kind %q", KindAccelerando)
		}
		if _, err := s.Maker.Accelerando.Parse(); err != nil {
			return fmt.Errorf("maker.accelerando: %w", err)
		}
	case "":
		return fmt.Errorf("maker.kind is required")
	default:
		return fmt.Errorf("unknown maker kind %q", s.Maker.Kind)
	}
	return nil
}

// Pattern converts the parameters into a talea pattern. The fill field
// appends a fill sentinel to the counts: "notes" or "rests".
func (p *TaleaParams) Pattern() (talea.Talea, error) {
	counts := append([]int{}, p.Counts...)
	switch p.Fill {
	case "":
	case "notes":
		counts = append(counts, talea.FillNotes)
	case "rests":
		counts = append(counts, talea.FillRests)
	default:
		return talea.Talea{}, fmt.Errorf("maker.talea.fill must be \"notes\" or \"rests\", got %q", p.Fill)
	}
	return talea.Talea{
		Counts:      counts,
		Denominator: p.Denominator,
		EndCounts:   append([]int{}, p.EndCounts...),
		Preamble:    append([]int{}, p.Preamble...),
	}, nil
}

// Config converts the parameters into a generator config.
func (p *TaleaParams) Config() rhythm.TaleaConfig {
	return rhythm.TaleaConfig{
		ExtraCounts:  append([]int{}, p.ExtraCounts...),
		ReadOnceOnly: p.ReadOnceOnly,
		Advance:      p.Advance,
	}
}

// Incise converts the parameters into an incise description.
func (p *IncisedParams) Incise() rhythm.Incise {
	return rhythm.Incise{
		PrefixTalea:        append([]int{}, p.PrefixTalea...),
		PrefixCounts:       append([]int{}, p.PrefixCounts...),
		SuffixTalea:        append([]int{}, p.SuffixTalea...),
		SuffixCounts:       append([]int{}, p.SuffixCounts...),
		Denominator:        p.Denominator,
		BodyRatio:          append([]int{}, p.BodyRatio...),
		FillWithRests:      p.FillWithRests,
		OuterDivisionsOnly: p.OuterDivisionsOnly,
	}
}

// Parse converts the parameters into interpolation gestures.
// An empty list yields the default interpolation.
func (p *AccelerandoParams) Parse() ([]rhythm.Interpolation, error) {
	if len(p.Interpolations) == 0 {
		return []rhythm.Interpolation{rhythm.DefaultInterpolation()}, nil
	}
	out := make([]rhythm.Interpolation, len(p.Interpolations))
	for i, ip := range p.Interpolations {
		start, err := ParseDuration(ip.Start)
		if err != nil {
			return nil, fmt.Errorf("interpolation %d start: %w", i, err)
		}
		stop, err := ParseDuration(ip.Stop)
		if err != nil {
			return nil, fmt.Errorf("interpolation %d stop: %w", i, err)
		}
		written := stop
		if ip.Written != "" {
			written, err = ParseDuration(ip.Written)
			if err != nil {
				return nil, fmt.Errorf("interpolation %d written: %w", i, err)
			}
		}
		out[i] = rhythm.Interpolation{StartDuration: start, StopDuration: stop, WrittenDuration: written}
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("interpolation %d: %w", i, err)
		}
	}
	return out, nil
}

// LoadFromFile loads a score from a YAML file.
func LoadFromFile(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}
	var score Score
	if err := yaml.Unmarshal(data, &score); err != nil {
		return nil, fmt.Errorf("failed to parse score file: %w", err)
	}
	if score.Name == "" {
		score.Name = nameFromPath(path)
	}
	return &score, nil
}

func nameFromPath(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
