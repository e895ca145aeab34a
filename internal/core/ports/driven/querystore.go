package driven

import (
	"context"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// QueryStore reads the curated query configuration for a domain.
// Implementations are read-only: loading never mutates the store.
type QueryStore interface {
	// ReadQueries returns the raw query strings for a domain in
	// storage order, without validation. A missing or unreadable
	// store location, or content that is not a sequence of strings,
	// fails with domain.ErrConfiguration.
	ReadQueries(ctx context.Context, d domain.Domain) ([]string, error)
}
