package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

// configFilename is the settings file inside the config directory.
const configFilename = "config.toml"

// Settings is the on-disk configuration shape.
type Settings struct {
	Discovery DiscoverySection `toml:"discovery"`
	Scoring   ScoringSection   `toml:"scoring"`
}

// DiscoverySection configures discovery bounds and policy.
type DiscoverySection struct {
	// DomainsDir is the query store base directory. Relative paths
	// resolve against the working directory.
	DomainsDir string `toml:"domains_dir"`

	// MaxQueries bounds the query set per domain.
	MaxQueries int `toml:"max_queries"`

	// MaxResultsPerQuery is the per-query provider limit.
	MaxResultsPerQuery int `toml:"max_results_per_query"`

	// GlobalResultCap caps the ranked candidate list.
	GlobalResultCap int `toml:"global_result_cap"`

	// RequireAllQueries makes any per-query failure fatal.
	RequireAllQueries bool `toml:"require_all_queries"`

	// RequestsPerSecond is the provider rate limit. Zero disables
	// rate limiting.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// BurstSize is the provider rate limit burst.
	BurstSize int `toml:"burst_size"`
}

// ScoringSection configures the candidate scoring weight table.
type ScoringSection struct {
	TermWeights       map[string]float64 `toml:"term_weights"`
	AuthorityHosts    []string           `toml:"authority_hosts"`
	AuthorityBonus    float64            `toml:"authority_bonus"`
	BlockedHosts      []string           `toml:"blocked_hosts"`
	BlockedPenalty    float64            `toml:"blocked_penalty"`
	SpecificityWeight float64            `toml:"specificity_weight"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	discovery := domain.DefaultDiscoverySettings()
	weights := domain.DefaultScoringWeights()
	return Settings{
		Discovery: DiscoverySection{
			DomainsDir:         "domains",
			MaxQueries:         discovery.MaxQueries,
			MaxResultsPerQuery: discovery.MaxResultsPerQuery,
			GlobalResultCap:    discovery.GlobalResultCap,
		},
		Scoring: ScoringSection{
			TermWeights:       weights.TermWeights,
			AuthorityHosts:    weights.AuthorityHosts,
			AuthorityBonus:    weights.AuthorityBonus,
			BlockedHosts:      weights.BlockedHosts,
			BlockedPenalty:    weights.BlockedPenalty,
			SpecificityWeight: weights.SpecificityWeight,
		},
	}
}

// LoadSettings reads settings from configDir/config.toml. If configDir
// is empty, ~/.apiscout is used. A missing file yields defaults; an
// unreadable or malformed file is a configuration error.
func LoadSettings(configDir string) (Settings, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Settings{}, fmt.Errorf("%w: getting home directory: %v", domain.ErrConfiguration, err)
		}
		configDir = filepath.Join(home, ".apiscout")
	}

	path := filepath.Join(configDir, configFilename)
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("%w: reading %s: %v", domain.ErrConfiguration, path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("%w: invalid TOML in %s: %v", domain.ErrConfiguration, path, err)
	}

	return applyDefaults(settings), nil
}

// applyDefaults fills zero values after a partial config file.
func applyDefaults(s Settings) Settings {
	defaults := DefaultSettings()
	if s.Discovery.DomainsDir == "" {
		s.Discovery.DomainsDir = defaults.Discovery.DomainsDir
	}
	if s.Discovery.MaxQueries <= 0 {
		s.Discovery.MaxQueries = defaults.Discovery.MaxQueries
	}
	if s.Discovery.MaxResultsPerQuery <= 0 {
		s.Discovery.MaxResultsPerQuery = defaults.Discovery.MaxResultsPerQuery
	}
	if s.Discovery.GlobalResultCap <= 0 {
		s.Discovery.GlobalResultCap = defaults.Discovery.GlobalResultCap
	}
	if s.Scoring.TermWeights == nil {
		s.Scoring.TermWeights = defaults.Scoring.TermWeights
	}
	if s.Scoring.AuthorityHosts == nil {
		s.Scoring.AuthorityHosts = defaults.Scoring.AuthorityHosts
	}
	if s.Scoring.AuthorityBonus == 0 {
		s.Scoring.AuthorityBonus = defaults.Scoring.AuthorityBonus
	}
	if s.Scoring.BlockedHosts == nil {
		s.Scoring.BlockedHosts = defaults.Scoring.BlockedHosts
	}
	if s.Scoring.BlockedPenalty == 0 {
		s.Scoring.BlockedPenalty = defaults.Scoring.BlockedPenalty
	}
	if s.Scoring.SpecificityWeight == 0 {
		s.Scoring.SpecificityWeight = defaults.Scoring.SpecificityWeight
	}
	return s
}

// DiscoverySettings converts the section to the domain type.
func (s Settings) DiscoverySettings() domain.DiscoverySettings {
	return domain.DiscoverySettings{
		MaxQueries:         s.Discovery.MaxQueries,
		MaxResultsPerQuery: s.Discovery.MaxResultsPerQuery,
		GlobalResultCap:    s.Discovery.GlobalResultCap,
		RequireAllQueries:  s.Discovery.RequireAllQueries,
	}
}

// ScoringWeights converts the section to the domain type.
func (s Settings) ScoringWeights() domain.ScoringWeights {
	return domain.ScoringWeights{
		TermWeights:       s.Scoring.TermWeights,
		AuthorityHosts:    s.Scoring.AuthorityHosts,
		AuthorityBonus:    s.Scoring.AuthorityBonus,
		BlockedHosts:      s.Scoring.BlockedHosts,
		BlockedPenalty:    s.Scoring.BlockedPenalty,
		SpecificityWeight: s.Scoring.SpecificityWeight,
	}
}
