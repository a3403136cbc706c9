package catalog

import (
	"context"

	"github.com/beesaferoot/estate-catalog/internal/models"
)

type CreateSupportInput struct {
	WhatsAppPhone string
	PhoneNumber   string
	Email         string
}

type UpdateSupportInput struct {
	WhatsAppPhone *string
	PhoneNumber   *string
	Email         *string
}

// CreateSupport inserts a support contact record. Support rows have no
// uniqueness constraint and no delete operation.
func (s *Service) CreateSupport(ctx context.Context, in CreateSupportInput) (*models.Support, error) {
	sup := &models.Support{
		WhatsAppPhone: in.WhatsAppPhone,
		PhoneNumber:   in.PhoneNumber,
		Email:         in.Email,
	}
	if err := s.supports.Insert(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) ListSupports(ctx context.Context) ([]models.Support, error) {
	return s.supports.List(ctx)
}

func (s *Service) UpdateSupport(ctx context.Context, id string, in UpdateSupportInput) (*models.Support, error) {
	if _, err := s.supports.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.WhatsAppPhone != nil {
		fields["whats_app_phone"] = *in.WhatsAppPhone
	}
	if in.PhoneNumber != nil {
		fields["phone_number"] = *in.PhoneNumber
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}

	if err := s.supports.Patch(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.supports.FindByID(ctx, id)
}
