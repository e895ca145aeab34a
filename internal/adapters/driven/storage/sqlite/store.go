package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/apiscout-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store is the SQLite-backed artifact store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.apiscout/data/discovery.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".apiscout", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "discovery.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save atomically inserts a new artifact version, allocating the next
// per-domain sequence inside the transaction. Existing rows are never
// updated.
func (s *Store) Save(ctx context.Context, artifact domain.DiscoveryArtifact) (domain.ArtifactKey, error) {
	queriesJSON, err := json.Marshal(artifact.Queries)
	if err != nil {
		return domain.ArtifactKey{}, fmt.Errorf("marshalling queries: %w", err)
	}
	candidatesJSON, err := json.Marshal(artifact.Candidates)
	if err != nil {
		return domain.ArtifactKey{}, fmt.Errorf("marshalling candidates: %w", err)
	}

	if artifact.CreatedAt.IsZero() {
		artifact.CreatedAt = time.Now().UTC()
	}

	// Sequence allocation and insert happen in one statement, so
	// concurrent saves never observe a half-allocated sequence and a
	// prior run is never overwritten.
	var seq int64
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO artifacts (domain, seq, run_id, queries, candidates, created_at)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
		FROM artifacts WHERE domain = ?
		RETURNING seq
	`, artifact.Domain.String(), artifact.RunID,
		string(queriesJSON), string(candidatesJSON), artifact.CreatedAt,
		artifact.Domain.String())
	if err := row.Scan(&seq); err != nil {
		return domain.ArtifactKey{}, fmt.Errorf("%w: inserting artifact: %v", domain.ErrPersistence, err)
	}

	return domain.ArtifactKey{Domain: artifact.Domain, Seq: seq}, nil
}

// Load retrieves the artifact at an explicit run sequence.
func (s *Store) Load(ctx context.Context, d domain.Domain, seq int64) (*domain.DiscoveryArtifact, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT domain, run_id, queries, candidates, created_at
		FROM artifacts WHERE domain = ? AND seq = ?
	`, d.String(), seq)

	artifact, err := scanArtifact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: artifact %s/%d", domain.ErrNotFound, d, seq)
		}
		return nil, err
	}
	return artifact, nil
}

// LoadLatest retrieves the most recently written artifact for a domain.
func (s *Store) LoadLatest(ctx context.Context, d domain.Domain) (*domain.DiscoveryArtifact, domain.ArtifactKey, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, domain, run_id, queries, candidates, created_at
		FROM artifacts WHERE domain = ?
		ORDER BY seq DESC LIMIT 1
	`, d.String())

	var seq int64
	var domainName, runID, queriesJSON, candidatesJSON string
	var createdAt time.Time
	if err := row.Scan(&seq, &domainName, &runID, &queriesJSON, &candidatesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ArtifactKey{}, fmt.Errorf("%w: no artifacts for domain %q", domain.ErrNotFound, d)
		}
		return nil, domain.ArtifactKey{}, fmt.Errorf("%w: scanning artifact: %v", domain.ErrPersistence, err)
	}

	artifact, err := unmarshalArtifact(domainName, runID, queriesJSON, candidatesJSON, createdAt)
	if err != nil {
		return nil, domain.ArtifactKey{}, err
	}
	return artifact, domain.ArtifactKey{Domain: d, Seq: seq}, nil
}

// List returns every artifact key for a domain, sequence ascending.
func (s *Store) List(ctx context.Context, d domain.Domain) ([]domain.ArtifactKey, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq FROM artifacts WHERE domain = ? ORDER BY seq", d.String())
	if err != nil {
		return nil, fmt.Errorf("%w: querying artifacts: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var keys []domain.ArtifactKey //nolint:prealloc // size unknown from query
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, fmt.Errorf("%w: scanning sequence: %v", domain.ErrPersistence, err)
		}
		keys = append(keys, domain.ArtifactKey{Domain: d, Seq: seq})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating artifacts: %v", domain.ErrPersistence, err)
	}

	return keys, nil
}

// scanArtifact reads one artifact row (without seq).
func scanArtifact(row *sql.Row) (*domain.DiscoveryArtifact, error) {
	var domainName, runID, queriesJSON, candidatesJSON string
	var createdAt time.Time
	if err := row.Scan(&domainName, &runID, &queriesJSON, &candidatesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scanning artifact: %v", domain.ErrPersistence, err)
	}
	return unmarshalArtifact(domainName, runID, queriesJSON, candidatesJSON, createdAt)
}

// unmarshalArtifact rebuilds the domain type from stored columns.
func unmarshalArtifact(domainName, runID, queriesJSON, candidatesJSON string, createdAt time.Time) (*domain.DiscoveryArtifact, error) {
	artifact := domain.DiscoveryArtifact{
		Domain:    domain.Domain(domainName),
		RunID:     runID,
		CreatedAt: createdAt.UTC(),
	}
	if err := json.Unmarshal([]byte(queriesJSON), &artifact.Queries); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling queries: %v", domain.ErrPersistence, err)
	}
	if err := json.Unmarshal([]byte(candidatesJSON), &artifact.Candidates); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling candidates: %v", domain.ErrPersistence, err)
	}
	return &artifact, nil
}
