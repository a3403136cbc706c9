package models

// Property is a development inside a working area, sold as units.
type Property struct {
	AuditableModel
	Name                  string  `gorm:"uniqueIndex;not null" json:"name"`
	Owner                 string  `gorm:"not null" json:"owner"`
	CoverURL              string  `gorm:"not null" json:"coverUrl"`
	DownPaymentPercentage float64 `gorm:"type:decimal(10,2);default:0" json:"downPaymentPercentage"`
	NumberOfYears         int     `gorm:"not null" json:"numberOfYear"`

	WorkingAreaID string       `gorm:"type:uuid;not null" json:"working_areaId"`
	WorkingArea   *WorkingArea `gorm:"foreignKey:WorkingAreaID" json:"working_area,omitempty"`

	// The cascade only applies to physical deletes; soft-deleting a property
	// leaves its units untouched.
	Units []Unit `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"units,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}
