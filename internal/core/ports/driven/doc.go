// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - QueryStore: Per-domain curated query configuration
//   - SearchProvider: Raw search results for one query (black box)
//   - Scorer: Relevance scoring for a single raw result
//   - ArtifactStore: Append-only discovery artifact persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
