// Package static provides a deterministic, offline implementation of
// the search provider port. It generates pseudo-results derived from
// the query tokens, which keeps discovery runs reproducible without
// any network dependency. Useful for development and pipelines that
// have not yet been wired to a real search backend.
package static

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
)

// maxSlugLen truncates the query-derived host slug.
const maxSlugLen = 30

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// Provider is the deterministic offline search provider.
type Provider struct{}

// NewProvider creates a static provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name identifies the provider.
func (p *Provider) Name() string {
	return "static"
}

// Search generates up to limit deterministic results for a query,
// simulating a mix of official developer portals and aggregator hosts.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]domain.RawResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearch, err)
	}

	slug := querySlug(query)
	hosts := []string{
		"developer." + slug + ".example.com",
		"docs." + slug + ".example.org",
		slug + ".api-hub.example.com",
		"api." + slug + ".example.net",
		"blog." + slug + ".example.net",
	}
	if limit > 0 && limit < len(hosts) {
		hosts = hosts[:limit]
	}

	results := make([]domain.RawResult, 0, len(hosts))
	for i, host := range hosts {
		results = append(results, domain.RawResult{
			URL:         fmt.Sprintf("https://%s/reference", host),
			Title:       fmt.Sprintf("%s result %d", query, i+1),
			Snippet:     fmt.Sprintf("API documentation for %s (%s)", query, host),
			SourceQuery: query,
		})
	}
	return results, nil
}

// querySlug reduces a query to a lowercase hyphenated token usable as
// a host label.
func querySlug(query string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(query), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		slug = "query"
	}
	return slug
}
