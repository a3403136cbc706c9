package models

// WorkingArea is a geographic zone that groups properties.
//
// The unique index on Name only has to hold for live rows: soft-deleted rows
// get their name mutated before the deletion marker is set, so they can never
// collide with a later create.
type WorkingArea struct {
	AuditableModel
	Name        string     `gorm:"uniqueIndex;not null" json:"name"`
	Description string     `gorm:"not null" json:"description"`
	URL         string     `gorm:"not null" json:"url"`
	Properties  []Property `gorm:"foreignKey:WorkingAreaID" json:"properties,omitempty"`
}

func (WorkingArea) TableName() string {
	return "working_areas"
}
