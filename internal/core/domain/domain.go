package domain

import (
	"fmt"
	"regexp"
)

// domainPattern restricts domain identifiers to lowercase names that are
// safe to use as directory names and storage keys.
var domainPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Domain identifies a named area of API interest (e.g. "weather", "finance").
// It scopes curated queries and discovery artifacts.
type Domain string

// Validate checks that the domain identifier is non-empty and matches
// the allowed character set.
func (d Domain) Validate() error {
	if d == "" {
		return fmt.Errorf("%w: domain must not be empty", ErrInvalidInput)
	}
	if !domainPattern.MatchString(string(d)) {
		return fmt.Errorf("%w: domain %q must match [a-z0-9_-]+", ErrInvalidInput, string(d))
	}
	return nil
}

// String returns the string representation.
func (d Domain) String() string {
	return string(d)
}
