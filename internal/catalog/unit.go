package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/beesaferoot/estate-catalog/internal/models"
)

type CreateUnitInput struct {
	Kind          models.UnitKind
	URL           string
	IsReady       bool
	DeliveryDate  *string
	Bedrooms      int
	Bathrooms     int
	SquareFootage float64
	TotalPrice    float64
	PropertyID    string
}

type UpdateUnitInput struct {
	Kind          *models.UnitKind
	URL           *string
	IsReady       *bool
	DeliveryDate  *string
	Bedrooms      *int
	Bathrooms     *int
	SquareFootage *float64
	TotalPrice    *float64
}

// CreateUnit inserts a unit under a property. The parent must exist and be
// live.
func (s *Service) CreateUnit(ctx context.Context, in CreateUnitInput) (*models.Unit, error) {
	if _, err := s.properties.FindByID(ctx, in.PropertyID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("property %s: %w", in.PropertyID, ErrNotFound)
		}
		return nil, err
	}

	kind := in.Kind
	if kind == "" {
		kind = models.UnitKindApartment
	}

	u := &models.Unit{
		Kind:          kind,
		URL:           in.URL,
		IsReady:       in.IsReady,
		DeliveryDate:  in.DeliveryDate,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		SquareFootage: in.SquareFootage,
		TotalPrice:    in.TotalPrice,
		PropertyID:    in.PropertyID,
	}
	if err := s.units.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetUnit(ctx context.Context, id string) (*models.Unit, error) {
	return s.units.FindByID(ctx, id)
}

func (s *Service) UpdateUnit(ctx context.Context, id string, in UpdateUnitInput) (*models.Unit, error) {
	if _, err := s.units.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Kind != nil {
		fields["kind"] = *in.Kind
	}
	if in.URL != nil {
		fields["url"] = *in.URL
	}
	if in.IsReady != nil {
		fields["is_ready"] = *in.IsReady
	}
	if in.DeliveryDate != nil {
		fields["delivery_date"] = *in.DeliveryDate
	}
	if in.Bedrooms != nil {
		fields["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		fields["bathrooms"] = *in.Bathrooms
	}
	if in.SquareFootage != nil {
		fields["square_footage"] = *in.SquareFootage
	}
	if in.TotalPrice != nil {
		fields["total_price"] = *in.TotalPrice
	}

	if err := s.units.Patch(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.units.FindByID(ctx, id)
}

// DeleteUnit soft-deletes a unit. Units carry no unique name, so there is no
// rename step; only the deletion marker is set.
func (s *Service) DeleteUnit(ctx context.Context, id string) error {
	if _, err := s.units.FindByID(ctx, id); err != nil {
		return err
	}
	return s.units.MarkDeleted(ctx, id)
}
