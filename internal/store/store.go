// Package store implements durable storage for the catalog entities on top of
// GORM. Lookups are scoped to live (not soft-deleted) rows unless the caller
// opts in to deleted rows.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type queryOptions struct {
	includeDeleted bool
	relations      []string
}

// QueryOption adjusts the scope of a store lookup.
type QueryOption func(*queryOptions)

// IncludeDeleted widens the lookup to soft-deleted rows.
func IncludeDeleted() QueryOption {
	return func(o *queryOptions) { o.includeDeleted = true }
}

// WithRelations eager-loads the named association paths.
func WithRelations(paths ...string) QueryOption {
	return func(o *queryOptions) { o.relations = append(o.relations, paths...) }
}

// Store is the generic persistence base shared by the per-entity stores.
type Store[T any] struct {
	db *gorm.DB
}

func (s *Store[T]) query(ctx context.Context, opts ...QueryOption) *gorm.DB {
	var o queryOptions
	for _, opt := range opts {
		opt(&o)
	}

	q := s.db.WithContext(ctx)
	if o.includeDeleted {
		q = q.Unscoped()
	}
	for _, rel := range o.relations {
		q = q.Preload(rel)
	}
	return q
}

func (s *Store[T]) first(ctx context.Context, cond string, arg any, opts ...QueryOption) (*T, error) {
	var out T
	if err := s.query(ctx, opts...).Where(cond, arg).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// FindByID returns the row with the given identifier.
func (s *Store[T]) FindByID(ctx context.Context, id string, opts ...QueryOption) (*T, error) {
	return s.first(ctx, "id = ?", id, opts...)
}

// List returns all live rows, with any requested relations preloaded.
func (s *Store[T]) List(ctx context.Context, opts ...QueryOption) ([]T, error) {
	var out []T
	if err := s.query(ctx, opts...).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Insert persists a new row. Unique index collisions and foreign key
// violations surface as ErrConstraintViolation.
func (s *Store[T]) Insert(ctx context.Context, row *T) error {
	return translate(s.db.WithContext(ctx).Create(row).Error)
}

// Patch applies the given column values to the live row with the given id.
// Columns absent from fields keep their prior values.
func (s *Store[T]) Patch(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	var model T
	res := s.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkDeleted sets the deletion timestamp on the row with the given id. It is
// a no-op when the row is already soft-deleted or does not exist.
func (s *Store[T]) MarkDeleted(ctx context.Context, id string) error {
	var model T
	return translate(s.db.WithContext(ctx).Where("id = ?", id).Delete(&model).Error)
}

// translate maps GORM errors to the store's error kinds. Relies on the
// driver's error translation (gorm.Config{TranslateError: true}).
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicated key", ErrConstraintViolation)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: foreign key violated", ErrConstraintViolation)
	default:
		return err
	}
}
