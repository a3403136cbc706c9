package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beesaferoot/estate-catalog/internal/store"
)

func TestDeletedName_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := deletedName("X")
		assert.True(t, strings.HasPrefix(n, "X_d"))
		assert.False(t, seen[n], "mutated name reused: %s", n)
		seen[n] = true
	}
}

func TestPartialDeleteError_Unwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &PartialDeleteError{Kind: "property", ID: "abc", RenamedTo: "P1_d123", Err: inner}

	assert.ErrorIs(t, err, inner)

	var partial *PartialDeleteError
	assert.ErrorAs(t, error(err), &partial)
	assert.Equal(t, "P1_d123", partial.RenamedTo)
	assert.Contains(t, err.Error(), "P1_d123")
}

func TestErrorKinds_Distinct(t *testing.T) {
	assert.NotErrorIs(t, ErrDuplicateName, ErrNotFound)
	assert.NotErrorIs(t, ErrConstraintViolation, ErrDuplicateName)
	assert.ErrorIs(t, ErrNotFound, store.ErrNotFound)
}
