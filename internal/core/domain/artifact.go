package domain

import (
	"fmt"
	"time"
)

// ArtifactKey addresses one persisted discovery run. Keys are derived
// from the domain plus a per-domain monotonic sequence, so a new run
// never collides with or overwrites a prior one.
type ArtifactKey struct {
	// Domain is the discovered domain.
	Domain Domain

	// Seq is the per-domain monotonic run sequence, starting at 1.
	Seq int64
}

// String returns the canonical key form "<domain>/<seq>".
func (k ArtifactKey) String() string {
	return fmt.Sprintf("%s/%d", k.Domain, k.Seq)
}

// DiscoveryArtifact is the persisted record of one discovery run for
// one domain. Artifacts are immutable once written; a new run produces
// a new artifact version rather than mutating a prior one.
type DiscoveryArtifact struct {
	// Domain is the discovered domain.
	Domain Domain `json:"domain"`

	// RunID is a unique identifier for this run.
	RunID string `json:"run_id"`

	// Queries is the validated query set used, in storage order.
	Queries []string `json:"queries"`

	// Candidates is the ranked candidate list, rank ascending.
	Candidates []Candidate `json:"candidates"`

	// CreatedAt is when the artifact was assembled (UTC).
	CreatedAt time.Time `json:"created_at"`
}
