package pantry

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		// AddPantryEntry finds the product called productName, creating it when
		// missing, and stores entry against it in a single transaction.
		AddPantryEntry(ctx context.Context, productName string, entry *entities.PantryEntry) error
		GetPantryEntryWithProduct(ctx context.Context, id int64) (*entities.PantryEntry, error)
		// GetPantryEntriesWithProduct loads every entry with its product and the
		// product's shopping list rows.
		GetPantryEntriesWithProduct(ctx context.Context) ([]*entities.PantryEntry, error)
		GetPantryEntriesExpiringBy(ctx context.Context, date time.Time) ([]*entities.PantryEntry, error)
		MarkPantryEntryOpened(ctx context.Context, id int64) (int64, error)
		DeletePantryEntry(ctx context.Context, id int64) (int64, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryEntry(ctx context.Context, productName string, entry *entities.PantryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product entities.Product
		if err := tx.Where(entities.Product{Name: productName}).FirstOrCreate(&product).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				return domain.ErrProductNameExists
			}
			return err
		}

		entry.ProductID = product.ID
		entry.Product = nil
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		entry.Product = &product
		return nil
	})
}

func (r *pantryRepository) GetPantryEntryWithProduct(ctx context.Context, id int64) (*entities.PantryEntry, error) {
	var entry entities.PantryEntry
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *pantryRepository) GetPantryEntriesWithProduct(ctx context.Context) ([]*entities.PantryEntry, error) {
	var entries []*entities.PantryEntry
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Shoppables").
		Order("id asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *pantryRepository) GetPantryEntriesExpiringBy(ctx context.Context, date time.Time) ([]*entities.PantryEntry, error) {
	var entries []*entities.PantryEntry
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("expiry_date <= ?", date.Format("2006-01-02")).
		Order("expiry_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *pantryRepository) MarkPantryEntryOpened(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.PantryEntry{}).
		Where("id = ?", id).
		Update("opened", true)
	return res.RowsAffected, res.Error
}

func (r *pantryRepository) DeletePantryEntry(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryEntry{})
	return res.RowsAffected, res.Error
}
