package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
	"github.com/beesaferoot/estate-catalog/internal/models"
)

// SeedCmd loads a small sample data set, useful for local development.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample catalog data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}
			svc := newService(db)
			ctx := context.Background()

			wa, err := svc.CreateWorkingArea(ctx, catalog.CreateWorkingAreaInput{
				Name:        "New Cairo",
				Description: "Eastern expansion zone",
				URL:         "https://example.com/areas/new-cairo.jpg",
			})
			if err != nil {
				return err
			}

			p, err := svc.CreateProperty(ctx, catalog.CreatePropertyInput{
				Name:                  "Palm Heights",
				Owner:                 "Palm Development",
				CoverURL:              "https://example.com/properties/palm-heights.jpg",
				DownPaymentPercentage: 10,
				NumberOfYears:         7,
				WorkingAreaID:         wa.ID,
			})
			if err != nil {
				return err
			}

			if _, err := svc.CreateUnit(ctx, catalog.CreateUnitInput{
				Kind:          models.UnitKindApartment,
				URL:           "https://example.com/units/ph-101.jpg",
				Bedrooms:      2,
				Bathrooms:     1,
				SquareFootage: 120,
				TotalPrice:    2500000,
				PropertyID:    p.ID,
			}); err != nil {
				return err
			}

			if _, err := svc.CreateSupport(ctx, catalog.CreateSupportInput{
				WhatsAppPhone: "+201000000000",
				PhoneNumber:   "+201000000001",
				Email:         "support@example.com",
			}); err != nil {
				return err
			}

			fmt.Println("Sample data inserted")
			return nil
		},
	}
}
