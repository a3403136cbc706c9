package models

// Support is a customer support contact record. It has no relationships and
// no delete operation; multiple rows may exist.
type Support struct {
	AuditableModel
	WhatsAppPhone string `gorm:"not null" json:"whatsApp_phone"`
	PhoneNumber   string `gorm:"not null" json:"phone_number"`
	Email         string `gorm:"not null" json:"mail_us"`
}

func (Support) TableName() string {
	return "supports"
}
