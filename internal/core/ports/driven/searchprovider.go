package driven

import (
	"context"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// SearchProvider is the external search capability, treated as a black
// box by the core. Implementations may scrape, call real search APIs,
// or generate deterministic offline results. Retry and rate-limit
// policy belongs to the provider adapter, never to the orchestrator.
type SearchProvider interface {
	// Name identifies the provider (e.g. "static").
	Name() string

	// Search returns up to limit raw results for one query, in
	// provider order. Network, rate-limit, and malformed-response
	// failures all surface as errors wrapping domain.ErrSearch.
	Search(ctx context.Context, query string, limit int) ([]domain.RawResult, error)
}
