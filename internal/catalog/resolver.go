package catalog

import (
	"context"

	"github.com/beesaferoot/estate-catalog/internal/models"
	"github.com/beesaferoot/estate-catalog/internal/store"
)

// Relationship resolution. Each method loads an entity (or collection) with
// the relation shape its callers need. GORM's default scope keeps soft-deleted
// rows out of every preloaded collection.

// ListWorkingAreas returns all live working areas, each with its live
// properties.
func (s *Service) ListWorkingAreas(ctx context.Context) ([]models.WorkingArea, error) {
	return s.workingAreas.List(ctx, store.WithRelations("Properties"))
}

// GetWorkingAreaByName resolves a working area two levels deep: properties
// and their units.
func (s *Service) GetWorkingAreaByName(ctx context.Context, name string) (*models.WorkingArea, error) {
	return s.workingAreas.FindByName(ctx, name, store.WithRelations("Properties.Units"))
}

// ListProperties returns all live properties, each with its live units.
func (s *Service) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.properties.List(ctx, store.WithRelations("Units"))
}

// GetPropertyByName resolves a property with its units and parent working
// area.
func (s *Service) GetPropertyByName(ctx context.Context, name string) (*models.Property, error) {
	return s.properties.FindByName(ctx, name, store.WithRelations("Units", "WorkingArea"))
}

// ListUnits returns all live units, each with its parent property and
// grandparent working area.
func (s *Service) ListUnits(ctx context.Context) ([]models.Unit, error) {
	return s.units.List(ctx, store.WithRelations("Property.WorkingArea"))
}

// GetUnitWithParents resolves a unit with its parent property and grandparent
// working area.
func (s *Service) GetUnitWithParents(ctx context.Context, id string) (*models.Unit, error) {
	return s.units.FindByID(ctx, id, store.WithRelations("Property.WorkingArea"))
}
