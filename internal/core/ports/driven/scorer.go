package driven

import (
	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// Scorer computes the relevance score for a single raw result.
// Scoring is injected so the weight table and signals can change
// without touching ranking or ordering logic.
type Scorer interface {
	// Score returns a relevance score in [0, 1] for a result surfaced
	// by the query at queryIndex within a set of queryCount queries.
	// Later query indexes are more specific by curation convention.
	// A scoring failure aborts the run and is never swallowed.
	Score(r domain.RawResult, queryIndex, queryCount int) (float64, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(r domain.RawResult, queryIndex, queryCount int) (float64, error)

// Score calls the wrapped function.
func (f ScorerFunc) Score(r domain.RawResult, queryIndex, queryCount int) (float64, error) {
	return f(r, queryIndex, queryCount)
}
