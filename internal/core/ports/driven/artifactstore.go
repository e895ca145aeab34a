package driven

import (
	"context"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// ArtifactStore persists discovery artifacts as an append-only,
// versioned history keyed by (domain, run sequence).
type ArtifactStore interface {
	// Save atomically writes a new artifact version and returns its
	// key. Saving never overwrites a prior run; each call allocates
	// the next per-domain sequence. Storage failures wrap
	// domain.ErrPersistence and leave prior artifacts untouched.
	Save(ctx context.Context, artifact domain.DiscoveryArtifact) (domain.ArtifactKey, error)

	// Load retrieves the artifact at an explicit run sequence.
	// An absent domain or sequence fails with domain.ErrNotFound;
	// storage unavailability wraps domain.ErrPersistence.
	Load(ctx context.Context, d domain.Domain, seq int64) (*domain.DiscoveryArtifact, error)

	// LoadLatest retrieves the most recently written artifact for a
	// domain together with its key.
	LoadLatest(ctx context.Context, d domain.Domain) (*domain.DiscoveryArtifact, domain.ArtifactKey, error)

	// List returns every artifact key for a domain, sequence ascending.
	List(ctx context.Context, d domain.Domain) ([]domain.ArtifactKey, error)

	// Close releases storage resources.
	Close() error
}
