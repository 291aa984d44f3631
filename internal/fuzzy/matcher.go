package fuzzy

// DefaultCutoff is the minimum similarity for a candidate to count as close.
const DefaultCutoff = 0.6

// Match is a candidate that cleared the cutoff.
type Match struct {
	Candidate string
	Score     float64
}

// Category groups candidate phrases under a name. Categories are evaluated
// in slice order, which is also the tie-break order.
type Category struct {
	Name       string
	Candidates []string
}

// Matcher compares whole strings; it does no tokenization or case folding,
// so callers pass normalized input.
type Matcher struct {
	scorer Scorer
	cutoff float64
}

// NewMatcher creates a matcher. A nil scorer selects RatioScorer.
func NewMatcher(scorer Scorer, cutoff float64) *Matcher {
	if scorer == nil {
		scorer = RatioScorer{}
	}
	return &Matcher{scorer: scorer, cutoff: cutoff}
}

// Default returns a ratio matcher using DefaultCutoff.
func Default() *Matcher {
	return NewMatcher(RatioScorer{}, DefaultCutoff)
}

// Cutoff returns the configured threshold.
func (m *Matcher) Cutoff() float64 {
	return m.cutoff
}

// Score exposes the underlying metric.
func (m *Matcher) Score(query, candidate string) float64 {
	return m.scorer.Score(query, candidate)
}

// BestMatch returns the highest scoring candidate at or above the cutoff.
// Equal scores go to the lexicographically larger candidate, the order
// Python's difflib.get_close_matches ranks (score, word) pairs in.
func (m *Matcher) BestMatch(query string, candidates []string) (Match, bool) {
	var best Match
	found := false
	for _, c := range candidates {
		s := m.scorer.Score(query, c)
		if s < m.cutoff {
			continue
		}
		if !found || s > best.Score || (s == best.Score && c > best.Candidate) {
			best = Match{Candidate: c, Score: s}
			found = true
		}
	}
	return best, found
}

// IsCloseMatch reports whether any candidate is similar enough to the
// whole query. Short queries against long phrases often fail; that is
// inherent to whole-string similarity.
func (m *Matcher) IsCloseMatch(query string, candidates []string) bool {
	for _, c := range candidates {
		if m.scorer.Score(query, c) >= m.cutoff {
			return true
		}
	}
	return false
}

// BestCategory returns the category owning the globally best candidate.
// A later category must score strictly higher to displace an earlier one.
func (m *Matcher) BestCategory(query string, categories []Category) (string, Match, bool) {
	var (
		bestName  string
		bestMatch Match
		found     bool
	)
	for _, cat := range categories {
		match, ok := m.BestMatch(query, cat.Candidates)
		if !ok {
			continue
		}
		if !found || match.Score > bestMatch.Score {
			bestName, bestMatch, found = cat.Name, match, true
		}
	}
	return bestName, bestMatch, found
}
