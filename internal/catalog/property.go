package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/beesaferoot/estate-catalog/internal/models"
)

type CreatePropertyInput struct {
	Name                  string
	Owner                 string
	CoverURL              string
	DownPaymentPercentage float64
	NumberOfYears         int
	WorkingAreaID         string
}

type UpdatePropertyInput struct {
	Name                  *string
	Owner                 *string
	CoverURL              *string
	DownPaymentPercentage *float64
	NumberOfYears         *int
}

// CreateProperty inserts a property under a working area. The parent must
// exist and be live.
func (s *Service) CreateProperty(ctx context.Context, in CreatePropertyInput) (*models.Property, error) {
	if _, err := s.workingAreas.FindByID(ctx, in.WorkingAreaID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("working area %s: %w", in.WorkingAreaID, ErrNotFound)
		}
		return nil, err
	}
	if err := s.propertyNameFree(ctx, in.Name, ""); err != nil {
		return nil, err
	}

	p := &models.Property{
		Name:                  in.Name,
		Owner:                 in.Owner,
		CoverURL:              in.CoverURL,
		DownPaymentPercentage: in.DownPaymentPercentage,
		NumberOfYears:         in.NumberOfYears,
		WorkingAreaID:         in.WorkingAreaID,
	}
	if err := s.properties.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	return s.properties.FindByID(ctx, id)
}

func (s *Service) UpdateProperty(ctx context.Context, id string, in UpdatePropertyInput) (*models.Property, error) {
	if _, err := s.properties.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Name != nil {
		if err := s.propertyNameFree(ctx, *in.Name, id); err != nil {
			return nil, err
		}
		fields["name"] = *in.Name
	}
	if in.Owner != nil {
		fields["owner"] = *in.Owner
	}
	if in.CoverURL != nil {
		fields["cover_url"] = *in.CoverURL
	}
	if in.DownPaymentPercentage != nil {
		fields["down_payment_percentage"] = *in.DownPaymentPercentage
	}
	if in.NumberOfYears != nil {
		fields["number_of_years"] = *in.NumberOfYears
	}

	if err := s.properties.Patch(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.properties.FindByID(ctx, id)
}

// DeleteProperty soft-deletes a property using the same rename-then-mark
// protocol as working areas. Units under the property are not cascaded: they
// remain live and listable. That asymmetry is a documented contract of the
// catalog, not an oversight.
func (s *Service) DeleteProperty(ctx context.Context, id string) error {
	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return err
	}

	renamed := deletedName(p.Name)
	if err := s.properties.Patch(ctx, id, map[string]any{"name": renamed}); err != nil {
		return err
	}
	if err := s.properties.MarkDeleted(ctx, id); err != nil {
		return &PartialDeleteError{Kind: "property", ID: id, RenamedTo: renamed, Err: err}
	}
	return nil
}

func (s *Service) propertyNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := s.properties.FindByName(ctx, name)
	switch {
	case err == nil:
		if existing.ID != excludeID {
			return ErrDuplicateName
		}
		return nil
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return err
	}
}
