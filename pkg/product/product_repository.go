package product

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id int64) (*entities.Product, error)
		GetProducts(ctx context.Context) ([]*entities.Product, error)
		SearchProducts(ctx context.Context, search string) ([]*entities.Product, error)
		UpdateExternalImage(ctx context.Context, id int64, externalImage *string) (int64, error)
		DeleteProduct(ctx context.Context, id int64) (int64, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrProductNameExists
		}
		return err
	}
	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SearchProducts(ctx context.Context, search string) ([]*entities.Product, error) {
	var products []*entities.Product
	pattern := "%" + likeEscaper.Replace(search) + "%"
	if err := r.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, pattern).
		Order("id asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateExternalImage(ctx context.Context, id int64, externalImage *string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("id = ?", id).
		Update("external_image", externalImage)
	return res.RowsAffected, res.Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{})
	return res.RowsAffected, res.Error
}
