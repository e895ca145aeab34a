package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RawResult is a single search hit as returned by a provider.
// Raw results are ephemeral: they exist only within one discovery run
// and are never persisted standalone.
type RawResult struct {
	// URL is the absolute location of the hit.
	URL string

	// Title is the result title. May be empty.
	Title string

	// Snippet is the result summary text. May be empty.
	Snippet string

	// SourceQuery is the curated query that produced this hit.
	SourceQuery string
}

// Candidate is a deduplicated, scored raw result.
// Uniqueness is defined by the normalized URL (see NormalizeURL).
type Candidate struct {
	// URL is the normalized location of the candidate.
	URL string `json:"url"`

	// Title is taken from the retained raw result.
	Title string `json:"title,omitempty"`

	// Snippet is taken from the retained raw result.
	Snippet string `json:"snippet,omitempty"`

	// SourceQueries lists every curated query that surfaced this URL,
	// sorted for deterministic output.
	SourceQueries []string `json:"source_queries"`

	// Score is the relevance score in [0, 1].
	Score float64 `json:"score"`

	// Rank is the 1-based position after ordering.
	Rank int `json:"rank"`
}

// NormalizeURL canonicalizes a URL for deduplication: lowercase scheme
// and host, query string and fragment dropped, trailing slash on the
// path removed. Returns an error for relative or unparseable URLs.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: parsing url %q: %v", ErrInvalidInput, raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: url %q is not absolute", ErrInvalidInput, raw)
	}

	path := strings.TrimSuffix(u.Path, "/")
	norm := url.URL{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Host),
		Path:   path,
	}
	return norm.String(), nil
}
