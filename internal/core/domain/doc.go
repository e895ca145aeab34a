// Package domain defines the core business entities for API Scout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Domain: A named area of API interest (e.g. "weather")
//   - QuerySet: The bounded, deduplicated search queries for a domain
//   - RawResult: A single raw search hit from a provider
//   - Candidate: A deduplicated, scored, ranked discovered API source
//   - DiscoveryArtifact: The persisted output of one discovery run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
