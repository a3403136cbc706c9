package models

var ModelTypeRegistry = map[string]interface{}{
	"Support":     Support{},
	"WorkingArea": WorkingArea{},
	"Property":    Property{},
	"Unit":        Unit{},
}
