// Package file provides a YAML file-backed implementation of the
// query store port. Each domain owns one queries file:
//
//	<base>/<domain>/queries.yaml
//
// with the format:
//
//	queries:
//	  - "weather API with free API key"
//	  - "how to request API key for weather API"
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
)

// DefaultQueriesFilename is the per-domain queries file name.
const DefaultQueriesFilename = "queries.yaml"

// Ensure QueryStore implements the interface.
var _ driven.QueryStore = (*QueryStore)(nil)

// QueryStore reads curated queries from per-domain YAML files.
// The store is read-only: loading never mutates the filesystem.
type QueryStore struct {
	baseDir  string
	filename string
}

// NewQueryStore creates a query store rooted at baseDir. If filename
// is empty, DefaultQueriesFilename is used.
func NewQueryStore(baseDir, filename string) *QueryStore {
	if filename == "" {
		filename = DefaultQueriesFilename
	}
	return &QueryStore{baseDir: baseDir, filename: filename}
}

// queriesFile is the on-disk document shape.
type queriesFile struct {
	Queries []string `yaml:"queries"`
}

// Path returns the queries file location for a domain.
func (s *QueryStore) Path(d domain.Domain) string {
	return filepath.Join(s.baseDir, d.String(), s.filename)
}

// ReadQueries returns the raw query strings for a domain in file
// order. A missing file, unreadable file, or malformed document is a
// configuration error; invariant checks happen in the loader service.
func (s *QueryStore) ReadQueries(ctx context.Context, d domain.Domain) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(d)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: query file not found: %s", domain.ErrConfiguration, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrConfiguration, path, err)
	}

	var doc queriesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML in %s: %v", domain.ErrConfiguration, path, err)
	}
	if doc.Queries == nil {
		return nil, fmt.Errorf("%w: %s is missing the 'queries' list", domain.ErrConfiguration, path)
	}

	return doc.Queries, nil
}
