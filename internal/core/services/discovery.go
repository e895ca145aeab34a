package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apiscout-cli/internal/logger"
)

// Ensure DiscoveryService implements the interface.
var _ driving.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService orchestrates one discovery run per domain:
// load queries, dispatch each to the search provider exactly once,
// rank the collected results, persist the artifact.
//
// The service holds no per-domain state across calls, so independent
// callers may discover different domains concurrently.
type DiscoveryService struct {
	queries  driving.QueryService
	provider driven.SearchProvider
	ranker   *Ranker
	store    driven.ArtifactStore
	settings domain.DiscoverySettings
}

// NewDiscoveryService creates the discovery orchestrator. Zero-valued
// settings fields fall back to defaults.
func NewDiscoveryService(
	queries driving.QueryService,
	provider driven.SearchProvider,
	ranker *Ranker,
	store driven.ArtifactStore,
	settings domain.DiscoverySettings,
) *DiscoveryService {
	defaults := domain.DefaultDiscoverySettings()
	if settings.MaxResultsPerQuery <= 0 {
		settings.MaxResultsPerQuery = defaults.MaxResultsPerQuery
	}
	return &DiscoveryService{
		queries:  queries,
		provider: provider,
		ranker:   ranker,
		store:    store,
		settings: settings,
	}
}

// Discover runs the pipeline for one domain and returns the persisted
// artifact with its storage key.
//
// Per-query search failures are non-fatal by default: the run proceeds
// with partial results as long as at least one query succeeded. Zero
// successes, or any failure when RequireAllQueries is set, abort the
// run. A cancelled context discards all in-flight results and nothing
// is persisted.
func (s *DiscoveryService) Discover(ctx context.Context, d domain.Domain) (*domain.DiscoveryArtifact, domain.ArtifactKey, error) {
	logger.Section("Discovery Run")
	logger.Info("Domain: %s, provider: %s", d, s.provider.Name())

	// Validation happens before any search call so an invalid query
	// set never wastes external requests.
	qs, err := s.queries.Load(ctx, d)
	if err != nil {
		return nil, domain.ArtifactKey{}, err
	}

	raw, err := s.collect(ctx, qs)
	if err != nil {
		return nil, domain.ArtifactKey{}, err
	}

	candidates, err := s.ranker.Rank(qs, raw)
	if err != nil {
		return nil, domain.ArtifactKey{}, err
	}

	if limit := s.settings.GlobalResultCap; limit > 0 && len(candidates) > limit {
		logger.Debug("Capping candidates: %d -> %d", len(candidates), limit)
		candidates = candidates[:limit]
	}

	artifact := domain.DiscoveryArtifact{
		Domain:     d,
		RunID:      uuid.NewString(),
		Queries:    qs.Queries(),
		Candidates: candidates,
		CreatedAt:  time.Now().UTC(),
	}

	// A cancelled run must never write a partial artifact.
	if err := ctx.Err(); err != nil {
		return nil, domain.ArtifactKey{}, fmt.Errorf("discovery for domain %q cancelled: %w", d, err)
	}

	key, err := s.store.Save(ctx, artifact)
	if err != nil {
		return nil, domain.ArtifactKey{}, fmt.Errorf("persisting artifact for domain %q: %w", d, err)
	}

	logger.Info("Persisted artifact %s with %d candidates", key, len(candidates))
	return &artifact, key, nil
}

// collect dispatches every query exactly once and gathers raw results.
func (s *DiscoveryService) collect(ctx context.Context, qs domain.QuerySet) ([]domain.RawResult, error) {
	d := qs.Domain()
	var raw []domain.RawResult
	var failures []error
	succeeded := 0

	for _, query := range qs.Queries() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery for domain %q cancelled: %w", d, err)
		}

		results, err := s.provider.Search(ctx, query, s.settings.MaxResultsPerQuery)
		if err != nil {
			qerr := &domain.QueryError{Domain: d, Query: query, Err: err}
			if s.settings.RequireAllQueries {
				return nil, fmt.Errorf("%w: %w", domain.ErrDiscovery, qerr)
			}
			logger.Warn("Query %q failed: %v", query, err)
			failures = append(failures, qerr)
			continue
		}

		succeeded++
		for _, r := range results {
			// Stamp the producing query so ranking can weigh
			// specificity regardless of provider behaviour.
			r.SourceQuery = query
			raw = append(raw, r)
		}
		logger.Debug("Query %q returned %d results", query, len(results))
	}

	if succeeded == 0 {
		return nil, fmt.Errorf("%w: all %d queries failed for domain %q: %w",
			domain.ErrDiscovery, qs.Len(), d, errors.Join(failures...))
	}

	logger.Debug("Collected %d raw results (%d/%d queries succeeded)", len(raw), succeeded, qs.Len())
	return raw, nil
}

// Ensure ArtifactBrowser implements the interface.
var _ driving.ArtifactService = (*ArtifactBrowser)(nil)

// ArtifactBrowser exposes persisted discovery history to the CLI.
type ArtifactBrowser struct {
	store driven.ArtifactStore
}

// NewArtifactBrowser creates an artifact browser over a store.
func NewArtifactBrowser(store driven.ArtifactStore) *ArtifactBrowser {
	return &ArtifactBrowser{store: store}
}

// List returns every artifact key for a domain, oldest first.
func (s *ArtifactBrowser) List(ctx context.Context, d domain.Domain) ([]domain.ArtifactKey, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return s.store.List(ctx, d)
}

// Get retrieves one artifact; a non-positive seq selects the latest.
func (s *ArtifactBrowser) Get(ctx context.Context, d domain.Domain, seq int64) (*domain.DiscoveryArtifact, domain.ArtifactKey, error) {
	if err := d.Validate(); err != nil {
		return nil, domain.ArtifactKey{}, err
	}
	if seq <= 0 {
		return s.store.LoadLatest(ctx, d)
	}
	artifact, err := s.store.Load(ctx, d, seq)
	if err != nil {
		return nil, domain.ArtifactKey{}, err
	}
	return artifact, domain.ArtifactKey{Domain: d, Seq: seq}, nil
}
