// Package memory provides in-memory implementations of the driven
// storage ports. Used in tests and as a reference implementation.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is an in-memory implementation of driven.ArtifactStore.
// Artifacts are kept per domain in append order; sequences are
// allocated under the store lock so concurrent saves for the same or
// different domains never collide.
type ArtifactStore struct {
	mu        sync.RWMutex
	artifacts map[domain.Domain][]domain.DiscoveryArtifact
}

// NewArtifactStore creates a new in-memory artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{
		artifacts: make(map[domain.Domain][]domain.DiscoveryArtifact),
	}
}

// Save appends a new artifact version and returns its key.
func (s *ArtifactStore) Save(_ context.Context, artifact domain.DiscoveryArtifact) (domain.ArtifactKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts[artifact.Domain] = append(s.artifacts[artifact.Domain], artifact)
	return domain.ArtifactKey{
		Domain: artifact.Domain,
		Seq:    int64(len(s.artifacts[artifact.Domain])),
	}, nil
}

// Load retrieves the artifact at an explicit run sequence.
func (s *ArtifactStore) Load(_ context.Context, d domain.Domain, seq int64) (*domain.DiscoveryArtifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := s.artifacts[d]
	if seq < 1 || seq > int64(len(runs)) {
		return nil, domain.ErrNotFound
	}
	artifact := runs[seq-1]
	return &artifact, nil
}

// LoadLatest retrieves the most recently written artifact for a domain.
func (s *ArtifactStore) LoadLatest(_ context.Context, d domain.Domain) (*domain.DiscoveryArtifact, domain.ArtifactKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := s.artifacts[d]
	if len(runs) == 0 {
		return nil, domain.ArtifactKey{}, domain.ErrNotFound
	}
	artifact := runs[len(runs)-1]
	return &artifact, domain.ArtifactKey{Domain: d, Seq: int64(len(runs))}, nil
}

// List returns every artifact key for a domain, sequence ascending.
func (s *ArtifactStore) List(_ context.Context, d domain.Domain) ([]domain.ArtifactKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := s.artifacts[d]
	keys := make([]domain.ArtifactKey, 0, len(runs))
	for i := range runs {
		keys = append(keys, domain.ArtifactKey{Domain: d, Seq: int64(i + 1)})
	}
	return keys, nil
}

// Close is a no-op for the in-memory store.
func (s *ArtifactStore) Close() error {
	return nil
}
