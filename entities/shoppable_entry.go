package entities

// ShoppableEntry marks a product as wanted on the shopping list.
type ShoppableEntry struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Timestamp
}
