package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Request payloads with the validation rules the lifecycle layer assumes have
// already run: required fields non-empty, numbers in range, URLs well-formed.

type createWorkingAreaRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
}

type updateWorkingAreaRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	URL         *string `json:"url" validate:"omitempty,url"`
}

type createPropertyRequest struct {
	Name                  string  `json:"name" validate:"required"`
	Owner                 string  `json:"owner" validate:"required"`
	CoverURL              string  `json:"coverUrl" validate:"required,url"`
	DownPaymentPercentage float64 `json:"downPaymentPercentage" validate:"gte=0,lte=100"`
	NumberOfYear          int     `json:"numberOfYear" validate:"required,gt=0"`
}

type updatePropertyRequest struct {
	Name                  *string  `json:"name" validate:"omitempty,min=1"`
	Owner                 *string  `json:"owner" validate:"omitempty,min=1"`
	CoverURL              *string  `json:"coverUrl" validate:"omitempty,url"`
	DownPaymentPercentage *float64 `json:"downPaymentPercentage" validate:"omitempty,gte=0,lte=100"`
	NumberOfYear          *int     `json:"numberOfYear" validate:"omitempty,gt=0"`
}

type createUnitRequest struct {
	Type          string  `json:"type" validate:"omitempty,oneof=apartment villa twin_house town_house studio"`
	URL           string  `json:"url" validate:"required,url"`
	IsReady       bool    `json:"isReady"`
	DeliveryDate  *string `json:"deliveryDate" validate:"omitempty,min=1"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	SquareFootage float64 `json:"squareFootage" validate:"gte=0"`
	TotalPrice    float64 `json:"total_price" validate:"gte=0"`
}

type updateUnitRequest struct {
	Type          *string  `json:"type" validate:"omitempty,oneof=apartment villa twin_house town_house studio"`
	URL           *string  `json:"url" validate:"omitempty,url"`
	IsReady       *bool    `json:"isReady"`
	DeliveryDate  *string  `json:"deliveryDate" validate:"omitempty,min=1"`
	Bedrooms      *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms     *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	SquareFootage *float64 `json:"squareFootage" validate:"omitempty,gte=0"`
	TotalPrice    *float64 `json:"total_price" validate:"omitempty,gte=0"`
}

type createSupportRequest struct {
	WhatsAppPhone string `json:"whatsApp_phone" validate:"required,e164"`
	PhoneNumber   string `json:"phone_number" validate:"required,e164"`
	Email         string `json:"mail_us" validate:"required,email"`
}

type updateSupportRequest struct {
	WhatsAppPhone *string `json:"whatsApp_phone" validate:"omitempty,e164"`
	PhoneNumber   *string `json:"phone_number" validate:"omitempty,e164"`
	Email         *string `json:"mail_us" validate:"omitempty,email"`
}

// validateRequest runs the struct validations and writes a 400 with the field
// errors when any fail.
func validateRequest(w http.ResponseWriter, validate *validator.Validate, req any) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}

	var fields []map[string]string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, map[string]string{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fields})
	return false
}
