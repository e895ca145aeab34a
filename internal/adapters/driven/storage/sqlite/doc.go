// Package sqlite provides the durable artifact store backed by SQLite
// (pure-Go modernc.org/sqlite driver, no CGO).
//
// Artifacts form an append-only, versioned key space: one row per
// (domain, seq) where seq is a per-domain monotonic sequence allocated
// inside the insert transaction. Saves are transactional, so a
// concurrent load either sees the whole artifact or none of it, and a
// prior run's artifact is never overwritten.
package sqlite
