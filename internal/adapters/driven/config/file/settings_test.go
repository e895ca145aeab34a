package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
	assert.Equal(t, domain.DefaultMaxQueries, settings.Discovery.MaxQueries)
}

func TestLoadSettings_PartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[discovery]
max_queries = 3
`)

	settings, err := LoadSettings(dir)

	require.NoError(t, err)
	assert.Equal(t, 3, settings.Discovery.MaxQueries)
	assert.Equal(t, DefaultSettings().Discovery.MaxResultsPerQuery, settings.Discovery.MaxResultsPerQuery)
	assert.NotEmpty(t, settings.Scoring.TermWeights)
}

func TestLoadSettings_FullOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[discovery]
domains_dir = "/data/domains"
max_queries = 4
max_results_per_query = 8
global_result_cap = 20
require_all_queries = true
requests_per_second = 1.5
burst_size = 2

[scoring]
authority_hosts = ["developer."]
authority_bonus = 0.3
blocked_hosts = ["spam."]
blocked_penalty = 0.9
specificity_weight = 0.2

[scoring.term_weights]
api = 0.5
sdk = 0.1
`)

	settings, err := LoadSettings(dir)

	require.NoError(t, err)
	assert.Equal(t, "/data/domains", settings.Discovery.DomainsDir)
	assert.True(t, settings.Discovery.RequireAllQueries)
	assert.InDelta(t, 1.5, settings.Discovery.RequestsPerSecond, 1e-9)

	weights := settings.ScoringWeights()
	assert.InDelta(t, 0.5, weights.TermWeights["api"], 1e-9)
	assert.InDelta(t, 0.1, weights.TermWeights["sdk"], 1e-9)
	assert.Equal(t, []string{"developer."}, weights.AuthorityHosts)
	assert.InDelta(t, 0.9, weights.BlockedPenalty, 1e-9)

	discovery := settings.DiscoverySettings()
	assert.Equal(t, 4, discovery.MaxQueries)
	assert.Equal(t, 8, discovery.MaxResultsPerQuery)
	assert.Equal(t, 20, discovery.GlobalResultCap)
	assert.True(t, discovery.RequireAllQueries)
}

func TestLoadSettings_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "::not toml::")

	_, err := LoadSettings(dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
