package domain

// DiscoverySettings bounds one discovery run. Values are loaded from
// application configuration; zero values are replaced with defaults at
// load time.
type DiscoverySettings struct {
	// MaxQueries bounds the query set size per domain.
	MaxQueries int

	// MaxResultsPerQuery is the per-query limit passed to the provider.
	MaxResultsPerQuery int

	// GlobalResultCap caps the ranked candidate list. Zero means no cap.
	GlobalResultCap int

	// RequireAllQueries makes any per-query search failure fatal.
	// The default policy proceeds with partial results as long as at
	// least one query succeeded.
	RequireAllQueries bool
}

// DefaultDiscoverySettings returns the built-in discovery bounds.
func DefaultDiscoverySettings() DiscoverySettings {
	return DiscoverySettings{
		MaxQueries:         DefaultMaxQueries,
		MaxResultsPerQuery: 5,
		GlobalResultCap:    15,
	}
}

// ScoringWeights is the configurable weight table for candidate
// scoring. The exact numbers are configuration data, not algorithmic
// constants: ordering logic never depends on them beyond determinism.
type ScoringWeights struct {
	// TermWeights maps a lowercase key term to the weight added when
	// the term appears in the result title or snippet.
	TermWeights map[string]float64

	// AuthorityHosts lists host substrings that mark known developer
	// portals (e.g. "developer.", "api.", "docs.").
	AuthorityHosts []string

	// AuthorityBonus is added once when the host matches any
	// authority pattern.
	AuthorityBonus float64

	// BlockedHosts lists host substrings that mark low-value
	// aggregator or blog hosts.
	BlockedHosts []string

	// BlockedPenalty is subtracted once when the host matches any
	// blocked pattern.
	BlockedPenalty float64

	// SpecificityWeight is the maximum bonus for results surfaced by
	// the most specific (last) query in the set. Earlier queries earn
	// a proportionally smaller share.
	SpecificityWeight float64
}

// DefaultScoringWeights returns a weight table tuned for discovering
// API provider documentation. Scores are clamped to [0, 1] after
// combination, so the table only has to order sensibly.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		TermWeights: map[string]float64{
			"api":           0.25,
			"key":           0.20,
			"documentation": 0.20,
			"pricing":       0.10,
		},
		AuthorityHosts:    []string{"developer.", "developers.", "docs.", "api."},
		AuthorityBonus:    0.15,
		BlockedHosts:      []string{"blog.", "forum."},
		BlockedPenalty:    0.50,
		SpecificityWeight: 0.10,
	}
}
