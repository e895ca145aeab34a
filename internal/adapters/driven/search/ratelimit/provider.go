// Package ratelimit decorates a search provider with client-side rate
// limiting. Cost and quota policy belongs at the provider boundary,
// never in the discovery orchestrator.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
)

// Config holds rate limiting configuration for a search provider.
type Config struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultConfig is a conservative default suitable for most public
// search APIs.
var DefaultConfig = Config{RequestsPerSecond: 2.0, BurstSize: 3}

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// Provider wraps a search provider with a token bucket limiter and an
// optional backoff window for rate-limit responses.
type Provider struct {
	inner   driven.SearchProvider
	limiter *rate.Limiter

	mu      sync.Mutex
	retryAt time.Time
}

// NewProvider wraps inner with the given limits. Zero-valued config
// fields fall back to DefaultConfig.
func NewProvider(inner driven.SearchProvider, cfg Config) *Provider {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultConfig.BurstSize
	}
	return &Provider{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Name identifies the wrapped provider.
func (p *Provider) Name() string {
	return p.inner.Name()
}

// Search waits for rate limit clearance, then delegates to the inner
// provider. Cancellation while waiting propagates the context error
// untouched; any other wait failure is classified as a search error so
// the orchestrator's per-query failure policy applies.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]domain.RawResult, error) {
	if err := p.wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &domain.QueryError{Query: query, Err: fmt.Errorf("%w: rate limit wait: %v", domain.ErrSearch, err)}
	}
	return p.inner.Search(ctx, query, limit)
}

// RecordRateLimitError sets a backoff window after the backend
// reported a rate-limit response. Non-positive durations use a
// 60 second default.
func (p *Provider) RecordRateLimitError(retryAfter time.Duration) {
	if retryAfter <= 0 {
		retryAfter = 60 * time.Second
	}
	p.mu.Lock()
	p.retryAt = time.Now().Add(retryAfter)
	p.mu.Unlock()
}

// wait blocks until a request is allowed, honouring any backoff window
// before consuming a token.
func (p *Provider) wait(ctx context.Context) error {
	p.mu.Lock()
	retryAt := p.retryAt
	p.mu.Unlock()

	if until := time.Until(retryAt); until > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(until):
		}
	}

	return p.limiter.Wait(ctx)
}
