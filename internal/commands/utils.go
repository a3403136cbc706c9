package commands

import (
	"os"

	"gorm.io/gorm"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
	"github.com/beesaferoot/estate-catalog/internal/database"
	"github.com/beesaferoot/estate-catalog/internal/store"
)

func getDB() (*gorm.DB, error) {
	return database.Open(os.Getenv("DATABASE_URL"))
}

func newService(db *gorm.DB) *catalog.Service {
	return catalog.NewService(
		store.NewWorkingAreaStore(db),
		store.NewPropertyStore(db),
		store.NewUnitStore(db),
		store.NewSupportStore(db),
	)
}
