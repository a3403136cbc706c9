package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditableModel provides the shared identifier and timestamp fields for all
// catalog entities. DeletedAt is the soft-delete marker: a non-zero value
// removes the row from every default query.
type AuditableModel struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID identifier when none was supplied.
func (m *AuditableModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
