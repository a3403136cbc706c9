package catalog

import (
	"errors"
	"fmt"

	"github.com/beesaferoot/estate-catalog/internal/store"
)

var (
	// ErrNotFound covers a missing entity as well as a missing or
	// soft-deleted parent.
	ErrNotFound = store.ErrNotFound

	// ErrConstraintViolation is a storage-layer constraint failure, typically
	// a unique-index race the duplicate pre-check could not see.
	ErrConstraintViolation = store.ErrConstraintViolation

	// ErrDuplicateName means a create or rename would collide with a live
	// row's unique name.
	ErrDuplicateName = errors.New("duplicate name")
)

// PartialDeleteError reports a soft-delete that renamed the row but failed to
// set the deletion marker. The row is left live under RenamedTo; retrying the
// mark step alone completes the delete, no second rename is needed.
type PartialDeleteError struct {
	Kind      string
	ID        string
	RenamedTo string
	Err       error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("%s %s renamed to %q but not marked deleted: %v", e.Kind, e.ID, e.RenamedTo, e.Err)
}

func (e *PartialDeleteError) Unwrap() error { return e.Err }
