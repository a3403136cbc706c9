package migrate

import (
	"time"

	"gorm.io/gorm"

	"github.com/beesaferoot/estate-catalog/internal/models"
)

// The catalog schema is fixed and known, so migrations are registered here by
// hand. Order matters: parents before children, for the foreign keys.

func init() {
	RegisterMigration(&Migration{
		Version:   "20240612090000",
		Name:      "create_catalog_tables",
		CreatedAt: time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.Support{},
				&models.WorkingArea{},
				&models.Property{},
			)
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(
				&models.Property{},
				&models.WorkingArea{},
				&models.Support{},
			)
		},
	})

	RegisterMigration(&Migration{
		Version:   "20240618143000",
		Name:      "create_units_table",
		CreatedAt: time.Date(2024, 6, 18, 14, 30, 0, 0, time.UTC),
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.Unit{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.Unit{})
		},
	})
}
