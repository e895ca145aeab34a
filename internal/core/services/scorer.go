package services

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
)

// Ensure WeightedScorer implements the interface.
var _ driven.Scorer = (*WeightedScorer)(nil)

// WeightedScorer combines independent relevance signals into a score
// in [0, 1] using a configurable weight table. Term weights are summed
// in sorted key order so identical input always produces a bit-identical
// score:
//
//   - key terms present in title or snippet, each with its own weight
//   - a fixed bonus for known developer-portal host patterns
//   - a penalty for known low-value host patterns
//   - a specificity bonus scaling with the producing query's position
//     in the curated set (later queries are more specific)
type WeightedScorer struct {
	weights domain.ScoringWeights

	// terms is the sorted key order of weights.TermWeights. Float
	// addition is not associative, so the fold order must be fixed.
	terms []string
}

// NewWeightedScorer creates a scorer from a weight table. A nil term
// map falls back to the default table.
func NewWeightedScorer(weights domain.ScoringWeights) *WeightedScorer {
	if weights.TermWeights == nil {
		weights = domain.DefaultScoringWeights()
	}
	terms := make([]string, 0, len(weights.TermWeights))
	for term := range weights.TermWeights {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return &WeightedScorer{weights: weights, terms: terms}
}

// Score computes the clamped relevance score for one raw result.
func (s *WeightedScorer) Score(r domain.RawResult, queryIndex, queryCount int) (float64, error) {
	u, err := url.Parse(r.URL)
	if err != nil || u.Host == "" {
		return 0, fmt.Errorf("%w: scoring result with invalid url %q", domain.ErrRanking, r.URL)
	}
	host := strings.ToLower(u.Hostname())
	text := strings.ToLower(r.Title + " " + r.Snippet)

	var score float64
	for _, term := range s.terms {
		if strings.Contains(text, strings.ToLower(term)) {
			score += s.weights.TermWeights[term]
		}
	}

	for _, pattern := range s.weights.AuthorityHosts {
		if pattern != "" && strings.Contains(host, strings.ToLower(pattern)) {
			score += s.weights.AuthorityBonus
			break
		}
	}

	for _, pattern := range s.weights.BlockedHosts {
		if pattern != "" && strings.Contains(host, strings.ToLower(pattern)) {
			score -= s.weights.BlockedPenalty
			break
		}
	}

	// Results from later (more specific) queries earn a proportional
	// share of the specificity weight.
	if queryCount > 1 && queryIndex > 0 {
		score += s.weights.SpecificityWeight * float64(queryIndex) / float64(queryCount-1)
	}

	return clamp01(score), nil
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
