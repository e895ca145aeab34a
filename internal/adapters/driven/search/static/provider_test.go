package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Deterministic(t *testing.T) {
	provider := NewProvider()
	ctx := context.Background()

	first, err := provider.Search(ctx, "weather API with free API key", 5)
	require.NoError(t, err)
	again, err := provider.Search(ctx, "weather API with free API key", 5)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestProvider_RespectsLimit(t *testing.T) {
	provider := NewProvider()

	results, err := provider.Search(context.Background(), "weather API", 2)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProvider_StampsSourceQuery(t *testing.T) {
	provider := NewProvider()

	results, err := provider.Search(context.Background(), "weather API", 5)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "weather API", r.SourceQuery)
		assert.Contains(t, r.URL, "https://")
	}
}

func TestProvider_DistinctURLsPerQuery(t *testing.T) {
	provider := NewProvider()

	results, err := provider.Search(context.Background(), "weather API", 5)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, r := range results {
		assert.False(t, seen[r.URL], "duplicate url %s", r.URL)
		seen[r.URL] = true
	}
}

func TestProvider_CancelledContext(t *testing.T) {
	provider := NewProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Search(ctx, "weather API", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuerySlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"weather API with free API key", "weather-api-with-free-api-key"},
		{"  Spaces  and  CAPS  ", "spaces-and-caps"},
		{"!!!", "query"},
		{"a very long query string that should be truncated somewhere", "a-very-long-query-string-that"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, querySlug(tt.in), "query %q", tt.in)
	}
}
