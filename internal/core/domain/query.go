package domain

import (
	"fmt"
	"strings"
)

// DefaultMaxQueries bounds a domain's query set unless overridden.
// Keeping the set small controls external search cost per run.
const DefaultMaxQueries = 5

// QuerySet is the validated, ordered sequence of curated search queries
// for one domain. It is immutable after construction: storage order is
// preserved, entries are trimmed, non-empty, and unique under
// case-insensitive comparison, and the length never exceeds the
// configured maximum.
type QuerySet struct {
	domain  Domain
	queries []string
}

// NewQuerySet validates raw queries and builds an immutable QuerySet.
//
// Validation order, each violation a distinct failure:
//  1. no entry may be empty or whitespace-only
//  2. no two entries may be equal after trimming, compared
//     case-insensitively (the first duplicate in storage order is
//     reported)
//  3. the resulting count must not exceed maxQueries — an over-full
//     store is a hard failure, never silent truncation
func NewQuerySet(domain Domain, queries []string, maxQueries int) (QuerySet, error) {
	if err := domain.Validate(); err != nil {
		return QuerySet{}, err
	}
	if maxQueries <= 0 {
		return QuerySet{}, fmt.Errorf("%w: max queries must be positive, got %d", ErrInvalidInput, maxQueries)
	}

	cleaned := make([]string, 0, len(queries))
	seen := make(map[string]struct{}, len(queries))
	for i, q := range queries {
		trimmed := strings.TrimSpace(q)
		if trimmed == "" {
			return QuerySet{}, fmt.Errorf("%w: domain %q query %d is empty", ErrValidation, domain, i+1)
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			return QuerySet{}, fmt.Errorf("%w: domain %q duplicate query %q", ErrValidation, domain, trimmed)
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}

	if len(cleaned) == 0 {
		return QuerySet{}, fmt.Errorf("%w: domain %q has no queries", ErrValidation, domain)
	}
	if len(cleaned) > maxQueries {
		return QuerySet{}, fmt.Errorf("%w: domain %q has %d queries, maximum is %d",
			ErrValidation, domain, len(cleaned), maxQueries)
	}

	return QuerySet{domain: domain, queries: cleaned}, nil
}

// Domain returns the owning domain.
func (qs QuerySet) Domain() Domain {
	return qs.domain
}

// Len returns the number of queries.
func (qs QuerySet) Len() int {
	return len(qs.queries)
}

// Queries returns the queries in storage order. The returned slice is
// a copy; the set itself cannot be mutated.
func (qs QuerySet) Queries() []string {
	out := make([]string, len(qs.queries))
	copy(out, qs.queries)
	return out
}

// Index returns the position of query within the set, or -1 if absent.
// Later positions are more specific by curation convention.
func (qs QuerySet) Index(query string) int {
	for i, q := range qs.queries {
		if q == query {
			return i
		}
	}
	return -1
}
