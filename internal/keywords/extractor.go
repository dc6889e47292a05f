package keywords

import (
	"fmt"
	"strings"
)

const minTermLength = 3

// TextBundle carries the free-text fields of a note. Missing fields are
// empty strings; extractors never mutate the bundle.
type TextBundle struct {
	Title       string
	Subject     string
	Description string
	Summary     string
	Content     string
}

// Extractor derives an ordered, deduplicated list of lowercase keywords
// from a text bundle. Implementations are pure: no I/O, no state carried
// between calls.
type Extractor interface {
	Extract(bundle TextBundle) []string
}

// Strategy names one of the two extraction algorithms. They implement the
// same contract but never interoperate; a deployment picks exactly one.
type Strategy string

const (
	StrategyFrequency Strategy = "frequency"
	StrategyPhrase    Strategy = "phrase"
)

// ForStrategy returns the extractor implementing the named strategy.
func ForStrategy(strategy Strategy, lists *Wordlists) (Extractor, error) {
	switch strategy {
	case StrategyFrequency:
		return NewFrequencyExtractor(lists), nil
	case StrategyPhrase:
		return NewPhraseExtractor(lists), nil
	default:
		return nil, fmt.Errorf("unknown extractor strategy %q", strategy)
	}
}

func joinNonEmpty(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
