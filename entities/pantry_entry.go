package entities

import "time"

type PantryEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64     `gorm:"not null;index" json:"product_id"`
	ExpiryDate time.Time `gorm:"type:date;not null" json:"expiry_date"`
	Opened     bool      `gorm:"not null;default:false" json:"opened"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Timestamp
}
