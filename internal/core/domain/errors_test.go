package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueryError_Unwrap tests QueryError wraps its cause.
func TestQueryError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("%w: connection refused", ErrSearch)
	err := &QueryError{Domain: "weather", Query: "weather API", Err: cause}

	assert.ErrorIs(t, err, ErrSearch)
	assert.Contains(t, err.Error(), "weather API")
	assert.Contains(t, err.Error(), "connection refused")
}

// TestQueryError_As tests the failing query is recoverable from a
// wrapped chain.
func TestQueryError_As(t *testing.T) {
	inner := &QueryError{Domain: "weather", Query: "weather API", Err: ErrSearch}
	wrapped := fmt.Errorf("dispatching queries: %w", inner)

	var qe *QueryError
	require.True(t, errors.As(wrapped, &qe))
	assert.Equal(t, "weather API", qe.Query)
	assert.Equal(t, Domain("weather"), qe.Domain)
}

// TestSentinels_Distinct tests the taxonomy sentinels do not match
// each other.
func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound, ErrInvalidInput, ErrConfiguration,
		ErrValidation, ErrSearch, ErrRanking, ErrPersistence, ErrDiscovery,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
