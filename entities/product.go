package entities

type Product struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"type:text;uniqueIndex;not null" json:"name"`
	ExternalImage *string `gorm:"type:text" json:"external_image,omitempty"`

	PantryEntries []PantryEntry    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Shoppables    []ShoppableEntry `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"shoppables,omitempty"`
	Timestamp
}
