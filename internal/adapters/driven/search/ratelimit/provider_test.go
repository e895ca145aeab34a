package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// fakeProvider counts delegated searches.
type fakeProvider struct {
	calls int
}

func (f *fakeProvider) Name() string {
	return "fake"
}

func (f *fakeProvider) Search(_ context.Context, query string, _ int) ([]domain.RawResult, error) {
	f.calls++
	return []domain.RawResult{{URL: "https://api.example.com/docs", SourceQuery: query}}, nil
}

func TestProvider_Delegates(t *testing.T) {
	inner := &fakeProvider{}
	provider := NewProvider(inner, Config{RequestsPerSecond: 100, BurstSize: 10})

	results, err := provider.Search(context.Background(), "weather API", 5)

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "fake", provider.Name())
}

func TestProvider_BurstAllowsConsecutiveCalls(t *testing.T) {
	inner := &fakeProvider{}
	provider := NewProvider(inner, Config{RequestsPerSecond: 1, BurstSize: 5})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := provider.Search(ctx, "weather API", 5)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, inner.calls)
}

func TestProvider_WaitExceedsDeadlineIsSearchError(t *testing.T) {
	inner := &fakeProvider{}
	// Burst of 1: the second call would need ~1s for a token, far past
	// the deadline, so the limiter refuses without waiting.
	provider := NewProvider(inner, Config{RequestsPerSecond: 1, BurstSize: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := provider.Search(ctx, "weather API", 5)
	require.NoError(t, err)

	_, err = provider.Search(ctx, "weather API key", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSearch)
	var qerr *domain.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "weather API key", qerr.Query)
	assert.Equal(t, 1, inner.calls, "inner provider must not be called after refusal")
}

func TestProvider_CancellationPassesThrough(t *testing.T) {
	inner := &fakeProvider{}
	provider := NewProvider(inner, Config{RequestsPerSecond: 100, BurstSize: 10})
	provider.RecordRateLimitError(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Search(ctx, "weather API", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrSearch)
	assert.Zero(t, inner.calls)
}

func TestProvider_BackoffWindowBlocks(t *testing.T) {
	inner := &fakeProvider{}
	provider := NewProvider(inner, Config{RequestsPerSecond: 100, BurstSize: 10})
	provider.RecordRateLimitError(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := provider.Search(ctx, "weather API", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, inner.calls)
}

func TestProvider_DefaultsApplied(t *testing.T) {
	inner := &fakeProvider{}
	provider := NewProvider(inner, Config{})

	_, err := provider.Search(context.Background(), "weather API", 5)

	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}
