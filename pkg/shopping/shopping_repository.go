package shopping

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddShoppableEntry(ctx context.Context, entry *entities.ShoppableEntry) error
		GetShoppableEntriesWithProduct(ctx context.Context) ([]*entities.ShoppableEntry, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddShoppableEntry(ctx context.Context, entry *entities.ShoppableEntry) error {
	if err := r.db.WithContext(ctx).Omit("Product").Create(entry).Error; err != nil {
		if utils.IsForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (r *shoppingRepository) GetShoppableEntriesWithProduct(ctx context.Context) ([]*entities.ShoppableEntry, error) {
	var entries []*entities.ShoppableEntry
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("id asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
