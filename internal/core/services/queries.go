package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apiscout-cli/internal/logger"
)

// Ensure QueryLoader implements the interface.
var _ driving.QueryService = (*QueryLoader)(nil)

// QueryLoader reads a domain's curated queries from the query store
// and validates them into an immutable, bounded QuerySet.
type QueryLoader struct {
	store      driven.QueryStore
	maxQueries int
}

// NewQueryLoader creates a query loader. A non-positive maxQueries
// falls back to domain.DefaultMaxQueries.
func NewQueryLoader(store driven.QueryStore, maxQueries int) *QueryLoader {
	if maxQueries <= 0 {
		maxQueries = domain.DefaultMaxQueries
	}
	return &QueryLoader{store: store, maxQueries: maxQueries}
}

// Load returns the validated query set for a domain. Store access
// failures surface as configuration errors, invariant violations as
// validation errors; both happen before any search call is made.
func (s *QueryLoader) Load(ctx context.Context, d domain.Domain) (domain.QuerySet, error) {
	if err := d.Validate(); err != nil {
		return domain.QuerySet{}, err
	}

	logger.Debug("Loading queries for domain %q (max %d)", d, s.maxQueries)

	raw, err := s.store.ReadQueries(ctx, d)
	if err != nil {
		return domain.QuerySet{}, fmt.Errorf("reading queries for domain %q: %w", d, err)
	}

	qs, err := domain.NewQuerySet(d, raw, s.maxQueries)
	if err != nil {
		return domain.QuerySet{}, err
	}

	logger.Debug("Loaded %d queries for domain %q", qs.Len(), d)
	return qs, nil
}
