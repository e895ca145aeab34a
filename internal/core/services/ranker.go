package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apiscout-cli/internal/logger"
)

// Ranker turns a raw result stream into an ordered candidate list.
// Ranking is deterministic: identical input (including order) always
// produces identical output.
type Ranker struct {
	scorer driven.Scorer
}

// NewRanker creates a ranker with the given scoring function.
func NewRanker(scorer driven.Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// rankedEntry accumulates per-URL state during deduplication.
type rankedEntry struct {
	candidate domain.Candidate
	firstSeen int
	queries   map[string]struct{}
}

// Rank deduplicates results by normalized URL, scores each unique
// candidate, and orders them by score descending with ties broken by
// first-seen position in the original stream. When duplicates collide
// the occurrence with the strictly higher score is retained; equal
// scores keep the earlier occurrence. Contributing queries are merged
// across all occurrences. Empty input yields an empty list.
//
// A scoring failure is never swallowed: it aborts ranking so partial
// results cannot be persisted.
func (r *Ranker) Rank(qs domain.QuerySet, results []domain.RawResult) ([]domain.Candidate, error) {
	entries := make(map[string]*rankedEntry, len(results))
	order := make([]string, 0, len(results))

	for i, raw := range results {
		key, err := domain.NormalizeURL(raw.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: result %d: %v", domain.ErrRanking, i+1, err)
		}

		queryIndex := qs.Index(raw.SourceQuery)
		if queryIndex < 0 {
			// Unknown source query scores as least specific.
			queryIndex = 0
		}

		score, err := r.scorer.Score(raw, queryIndex, qs.Len())
		if err != nil {
			return nil, fmt.Errorf("scoring %q: %w", raw.URL, err)
		}
		if score < 0 || score > 1 {
			return nil, fmt.Errorf("%w: score %g for %q outside [0, 1]", domain.ErrRanking, score, raw.URL)
		}

		entry, ok := entries[key]
		if !ok {
			entries[key] = &rankedEntry{
				candidate: domain.Candidate{
					URL:     key,
					Title:   raw.Title,
					Snippet: raw.Snippet,
					Score:   score,
				},
				firstSeen: i,
				queries:   map[string]struct{}{raw.SourceQuery: {}},
			}
			order = append(order, key)
			continue
		}

		entry.queries[raw.SourceQuery] = struct{}{}
		if score > entry.candidate.Score {
			entry.candidate.Title = raw.Title
			entry.candidate.Snippet = raw.Snippet
			entry.candidate.Score = score
		}
	}

	candidates := make([]domain.Candidate, 0, len(order))
	for _, key := range order {
		entry := entries[key]
		entry.candidate.SourceQueries = sortedQueries(entry.queries)
		candidates = append(candidates, entry.candidate)
	}

	// Score descending; equal scores preserve first-seen order. The
	// order slice is already first-seen ordered, so a stable sort on
	// score alone keeps ties deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	for i := range candidates {
		candidates[i].Rank = i + 1
	}

	logger.Debug("Ranked %d results into %d candidates", len(results), len(candidates))
	return candidates, nil
}

// sortedQueries returns the contributing queries in lexical order for
// deterministic output.
func sortedQueries(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}
