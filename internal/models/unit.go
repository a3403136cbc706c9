package models

// UnitKind enumerates the sellable unit types.
type UnitKind string

const (
	UnitKindApartment UnitKind = "apartment"
	UnitKindVilla     UnitKind = "villa"
	UnitKindTwinHouse UnitKind = "twin_house"
	UnitKindTownHouse UnitKind = "town_house"
	UnitKindStudio    UnitKind = "studio"
)

// Valid reports whether k is one of the declared unit kinds.
func (k UnitKind) Valid() bool {
	switch k {
	case UnitKindApartment, UnitKindVilla, UnitKindTwinHouse, UnitKindTownHouse, UnitKindStudio:
		return true
	}
	return false
}

// Unit is a sellable unit inside a property. Units carry no unique business
// key, so soft-deleting one sets the deletion marker without any rename step.
type Unit struct {
	AuditableModel
	Kind          UnitKind `gorm:"type:varchar(20);default:apartment" json:"type"`
	URL           string   `gorm:"not null" json:"url"`
	IsReady       bool     `gorm:"default:false" json:"isReady"`
	DeliveryDate  *string  `json:"deliveryDate,omitempty"`
	Bedrooms      int      `gorm:"not null" json:"bedrooms"`
	Bathrooms     int      `gorm:"not null" json:"bathrooms"`
	SquareFootage float64  `gorm:"not null" json:"squareFootage"`
	TotalPrice    float64  `gorm:"not null" json:"total_price"`

	PropertyID string    `gorm:"type:uuid;not null" json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}
