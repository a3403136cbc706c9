package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/beesaferoot/estate-catalog/internal/models"
)

// WorkingAreaStore persists working areas.
type WorkingAreaStore struct {
	Store[models.WorkingArea]
}

func NewWorkingAreaStore(db *gorm.DB) *WorkingAreaStore {
	return &WorkingAreaStore{Store[models.WorkingArea]{db: db}}
}

// FindByName returns the working area with the given unique name.
func (s *WorkingAreaStore) FindByName(ctx context.Context, name string, opts ...QueryOption) (*models.WorkingArea, error) {
	return s.first(ctx, "name = ?", name, opts...)
}

// PropertyStore persists properties.
type PropertyStore struct {
	Store[models.Property]
}

func NewPropertyStore(db *gorm.DB) *PropertyStore {
	return &PropertyStore{Store[models.Property]{db: db}}
}

// FindByName returns the property with the given unique name.
func (s *PropertyStore) FindByName(ctx context.Context, name string, opts ...QueryOption) (*models.Property, error) {
	return s.first(ctx, "name = ?", name, opts...)
}

// UnitStore persists units. Units have no unique business key, so lookups are
// by identifier only.
type UnitStore struct {
	Store[models.Unit]
}

func NewUnitStore(db *gorm.DB) *UnitStore {
	return &UnitStore{Store[models.Unit]{db: db}}
}

// SupportStore persists support contact records.
type SupportStore struct {
	Store[models.Support]
}

func NewSupportStore(db *gorm.DB) *SupportStore {
	return &SupportStore{Store[models.Support]{db: db}}
}
