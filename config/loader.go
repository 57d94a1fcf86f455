package config

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Loader loads score files matched by glob patterns.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new score loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadGlob loads every score matching the pattern. Patterns support
// doublestar globs, e.g. "scores/**/*.yaml". Matches are loaded in
// lexical order; every matched file must parse and validate.
func (l *Loader) LoadGlob(pattern string) ([]*Score, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid score pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no scores match %q", pattern)
	}
	sort.Strings(matches)

	scores := make([]*Score, 0, len(matches))
	for _, path := range matches {
		score, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		if err := score.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		l.logger.Debug("Loaded score",
			slog.String("path", path),
			slog.String("name", score.Name),
			slog.String("kind", score.Maker.Kind))
		scores = append(scores, score)
	}
	return scores, nil
}
