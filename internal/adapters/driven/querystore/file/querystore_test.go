package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// writeQueriesFile creates <base>/<domain>/queries.yaml with content.
func writeQueriesFile(t *testing.T, baseDir, domainName, content string) {
	t.Helper()
	dir := filepath.Join(baseDir, domainName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "queries.yaml"), []byte(content), 0o644))
}

func TestQueryStore_ReadQueries(t *testing.T) {
	baseDir := t.TempDir()
	writeQueriesFile(t, baseDir, "weather", `queries:
  - "weather API with free API key"
  - "how to request API key for weather API"
`)
	store := NewQueryStore(baseDir, "")

	queries, err := store.ReadQueries(context.Background(), "weather")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"weather API with free API key",
		"how to request API key for weather API",
	}, queries)
}

func TestQueryStore_PreservesFileOrder(t *testing.T) {
	baseDir := t.TempDir()
	writeQueriesFile(t, baseDir, "weather", `queries:
  - "zebra"
  - "alpha"
  - "middle"
`)
	store := NewQueryStore(baseDir, "")

	queries, err := store.ReadQueries(context.Background(), "weather")

	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, queries)
}

func TestQueryStore_MissingFile(t *testing.T) {
	store := NewQueryStore(t.TempDir(), "")

	_, err := store.ReadQueries(context.Background(), "unknown")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestQueryStore_InvalidYAML(t *testing.T) {
	baseDir := t.TempDir()
	writeQueriesFile(t, baseDir, "weather", "::not yaml::")
	store := NewQueryStore(baseDir, "")

	_, err := store.ReadQueries(context.Background(), "weather")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestQueryStore_MissingQueriesKey(t *testing.T) {
	baseDir := t.TempDir()
	writeQueriesFile(t, baseDir, "weather", "other_key: value\n")
	store := NewQueryStore(baseDir, "")

	_, err := store.ReadQueries(context.Background(), "weather")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestQueryStore_NonStringEntries(t *testing.T) {
	baseDir := t.TempDir()
	writeQueriesFile(t, baseDir, "weather", `queries:
  - nested:
      not: "a string"
`)
	store := NewQueryStore(baseDir, "")

	_, err := store.ReadQueries(context.Background(), "weather")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestQueryStore_EmptyList(t *testing.T) {
	baseDir := t.TempDir()
	writeQueriesFile(t, baseDir, "weather", "queries: []\n")
	store := NewQueryStore(baseDir, "")

	queries, err := store.ReadQueries(context.Background(), "weather")

	// An empty list is readable configuration; rejecting it is the
	// loader's validation job.
	require.NoError(t, err)
	assert.Empty(t, queries)
}

func TestQueryStore_CustomFilename(t *testing.T) {
	baseDir := t.TempDir()
	dir := filepath.Join(baseDir, "weather")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte("queries: [one]\n"), 0o644))
	store := NewQueryStore(baseDir, "custom.yaml")

	queries, err := store.ReadQueries(context.Background(), "weather")

	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, queries)
}

func TestQueryStore_Path(t *testing.T) {
	store := NewQueryStore("/data/domains", "")

	assert.Equal(t, filepath.Join("/data/domains", "weather", "queries.yaml"), store.Path("weather"))
}
