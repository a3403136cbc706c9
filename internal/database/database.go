// Package database opens GORM connections with the settings the catalog
// relies on. TranslateError must stay enabled: the store layer depends on
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated to surface constraint
// failures as typed errors.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the PostgreSQL database at dsn.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// OpenSQLite opens a SQLite database at path (":memory:" for tests) with
// foreign key enforcement on.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// A single connection keeps an in-memory database alive across the pool
	// and makes the pragma stick.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}
