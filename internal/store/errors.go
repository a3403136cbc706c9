package store

import "errors"

var (
	// ErrNotFound means no live row matched the lookup (or the row is
	// soft-deleted and the lookup did not ask for deleted rows).
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation means a storage-layer constraint rejected the
	// write: a unique index collision or a dangling foreign key. This is the
	// authoritative uniqueness guarantee under concurrent creates.
	ErrConstraintViolation = errors.New("constraint violation")
)
