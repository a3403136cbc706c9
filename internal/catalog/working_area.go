package catalog

import (
	"context"
	"errors"

	"github.com/beesaferoot/estate-catalog/internal/models"
)

// CreateWorkingAreaInput carries the already-validated fields for a new
// working area.
type CreateWorkingAreaInput struct {
	Name        string
	Description string
	URL         string
}

// UpdateWorkingAreaInput is a partial patch; nil fields keep their prior
// values.
type UpdateWorkingAreaInput struct {
	Name        *string
	Description *string
	URL         *string
}

func (s *Service) CreateWorkingArea(ctx context.Context, in CreateWorkingAreaInput) (*models.WorkingArea, error) {
	if err := s.workingAreaNameFree(ctx, in.Name, ""); err != nil {
		return nil, err
	}

	wa := &models.WorkingArea{
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
	}
	if err := s.workingAreas.Insert(ctx, wa); err != nil {
		return nil, err
	}
	return wa, nil
}

func (s *Service) GetWorkingArea(ctx context.Context, id string) (*models.WorkingArea, error) {
	return s.workingAreas.FindByID(ctx, id)
}

func (s *Service) UpdateWorkingArea(ctx context.Context, id string, in UpdateWorkingAreaInput) (*models.WorkingArea, error) {
	if _, err := s.workingAreas.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Name != nil {
		if err := s.workingAreaNameFree(ctx, *in.Name, id); err != nil {
			return nil, err
		}
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.URL != nil {
		fields["url"] = *in.URL
	}

	if err := s.workingAreas.Patch(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.workingAreas.FindByID(ctx, id)
}

// DeleteWorkingArea soft-deletes a working area. The name is mutated first so
// the unique index never blocks a later create with the original name; only
// then is the deletion marker set. Properties under the area are not
// cascaded: they stay live. A failure between the two steps leaves the row
// live under the mutated name and is reported as *PartialDeleteError so the
// caller can retry just the mark step.
func (s *Service) DeleteWorkingArea(ctx context.Context, id string) error {
	wa, err := s.workingAreas.FindByID(ctx, id)
	if err != nil {
		return err
	}

	renamed := deletedName(wa.Name)
	if err := s.workingAreas.Patch(ctx, id, map[string]any{"name": renamed}); err != nil {
		return err
	}
	if err := s.workingAreas.MarkDeleted(ctx, id); err != nil {
		return &PartialDeleteError{Kind: "working_area", ID: id, RenamedTo: renamed, Err: err}
	}
	return nil
}

// workingAreaNameFree fails with ErrDuplicateName when a live working area
// other than excludeID already holds name.
func (s *Service) workingAreaNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := s.workingAreas.FindByName(ctx, name)
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
