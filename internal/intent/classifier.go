// Package intent maps a normalized message to one named topic using an
// exact containment pass followed by a fuzzy best-score pass.
package intent

import (
	"strings"

	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/knowledge"
)

// Phase reports which pass produced a classification.
type Phase string

const (
	PhaseExact Phase = "exact"
	PhaseFuzzy Phase = "fuzzy"
)

// Result describes a classification.
type Result struct {
	Intent  string
	Keyword string
	Score   float64
	Phase   Phase
}

// Classifier is safe for concurrent use; it holds no mutable state.
type Classifier struct {
	intents    []knowledge.Intent
	categories []fuzzy.Category
	matcher    *fuzzy.Matcher
}

// NewClassifier creates a classifier over intents in their declared order.
func NewClassifier(intents []knowledge.Intent, matcher *fuzzy.Matcher) *Classifier {
	if matcher == nil {
		matcher = fuzzy.Default()
	}
	categories := make([]fuzzy.Category, len(intents))
	for i, in := range intents {
		categories[i] = fuzzy.Category{Name: in.Name, Candidates: in.Keywords}
	}
	return &Classifier{intents: intents, categories: categories, matcher: matcher}
}

// Classify returns the intent for text, which must already be normalized.
// The first keyword contained in text wins outright; otherwise the intent
// with the single highest keyword similarity above the cutoff is chosen.
func (c *Classifier) Classify(text string) (Result, bool) {
	for _, in := range c.intents {
		for _, kw := range in.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return Result{Intent: in.Name, Keyword: kw, Score: 1, Phase: PhaseExact}, true
			}
		}
	}

	name, match, ok := c.matcher.BestCategory(text, c.categories)
	if !ok {
		return Result{}, false
	}
	return Result{Intent: name, Keyword: match.Candidate, Score: match.Score, Phase: PhaseFuzzy}, true
}
