package driving

import (
	"context"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// DiscoveryService runs the discovery pipeline for one domain.
type DiscoveryService interface {
	// Discover loads the domain's query set, dispatches each query to
	// the search provider exactly once, ranks the collected results,
	// persists the artifact, and returns it with its storage key.
	Discover(ctx context.Context, d domain.Domain) (*domain.DiscoveryArtifact, domain.ArtifactKey, error)
}

// QueryService loads and validates curated query sets.
type QueryService interface {
	// Load returns the validated, bounded query set for a domain.
	Load(ctx context.Context, d domain.Domain) (domain.QuerySet, error)
}

// ArtifactService exposes persisted discovery history.
type ArtifactService interface {
	// List returns every artifact key for a domain, oldest first.
	List(ctx context.Context, d domain.Domain) ([]domain.ArtifactKey, error)

	// Get retrieves one artifact. A non-positive seq selects the
	// most recently written run.
	Get(ctx context.Context, d domain.Domain, seq int64) (*domain.DiscoveryArtifact, domain.ArtifactKey, error)
}
