package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates the query store or settings are
	// missing, unreadable, or structurally malformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation indicates a query set violates its invariants
	// (duplicate, empty, or over-limit queries).
	ErrValidation = errors.New("validation error")

	// ErrSearch indicates a search provider failure for one query.
	ErrSearch = errors.New("search error")

	// ErrRanking indicates the scoring function failed.
	ErrRanking = errors.New("ranking error")

	// ErrPersistence indicates artifact storage is unavailable or a
	// write/read failed. Distinct from ErrNotFound on load.
	ErrPersistence = errors.New("persistence error")

	// ErrDiscovery indicates a discovery run failed as a whole,
	// e.g. every query in the set failed to search.
	ErrDiscovery = errors.New("discovery error")
)

// QueryError carries the failing domain and query alongside the
// underlying cause. Classification follows the cause: errors.Is sees
// through Unwrap, so a QueryError matches ErrSearch only when its Err
// does. Callers recover the query with errors.As for retry decisions.
type QueryError struct {
	Domain Domain
	Query  string
	Err    error
}

// Error returns the error message.
func (e *QueryError) Error() string {
	return fmt.Sprintf("domain %q query %q: %v", e.Domain, e.Query, e.Err)
}

// Unwrap returns the underlying cause.
func (e *QueryError) Unwrap() error {
	return e.Err
}
