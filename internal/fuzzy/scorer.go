// Package fuzzy implements approximate whole-string matching of a query
// against keyword phrases. The similarity metric is pluggable through
// Scorer; the default is the Ratcliff/Obershelp sequence ratio.
package fuzzy

import (
	"fmt"
	"strings"
	"unicode/utf8"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pmezard/go-difflib/difflib"
)

// Scorer names accepted by ScorerByName.
const (
	ScorerRatio       = "ratio"
	ScorerLevenshtein = "levenshtein"
)

// Scorer returns a similarity in [0,1] between query and candidate.
// 1 means identical.
type Scorer interface {
	Score(query, candidate string) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(query, candidate string) float64

// Score implements Scorer.
func (f ScorerFunc) Score(query, candidate string) float64 {
	return f(query, candidate)
}

// RatioScorer computes 2*M/T where M is the number of characters in
// matching blocks and T the combined length, over runes rather than bytes.
// Candidate is the first sequence and query the second, so autojunk
// heuristics apply to the query as they do in close-match lookups.
type RatioScorer struct{}

// Score implements Scorer.
func (RatioScorer) Score(query, candidate string) float64 {
	return difflib.NewMatcher(splitRunes(candidate), splitRunes(query)).Ratio()
}

// LevenshteinScorer scores by normalized edit distance:
// 1 - distance/max(len(query), len(candidate)).
type LevenshteinScorer struct{}

// Score implements Scorer.
func (LevenshteinScorer) Score(query, candidate string) float64 {
	longest := max(utf8.RuneCountInString(query), utf8.RuneCountInString(candidate))
	if longest == 0 {
		return 1
	}
	dist := lfuzzy.LevenshteinDistance(query, candidate)
	return 1 - float64(dist)/float64(longest)
}

// ScorerByName resolves a configured scorer name. Empty selects ratio.
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerRatio:
		return RatioScorer{}, nil
	case ScorerLevenshtein:
		return LevenshteinScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown match scorer %q", name)
	}
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
