package shopping

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
)

type (
	ShoppingService interface {
		AddToList(ctx context.Context, productID int64) error
		GetShoppingList(ctx context.Context) ([]domain.ProductResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
	}
}

// AddToList does not check for an existing row; adding the same product twice
// lists it twice.
func (s *shoppingService) AddToList(ctx context.Context, productID int64) error {
	err := s.shoppingRepository.AddShoppableEntry(ctx, &entities.ShoppableEntry{ProductID: productID})
	if errors.Is(err, domain.ErrProductNotFound) {
		log.Warnf("add to list: product %d does not exist", productID)
		return nil
	}
	return err
}

func (s *shoppingService) GetShoppingList(ctx context.Context) ([]domain.ProductResponse, error) {
	entries, err := s.shoppingRepository.GetShoppableEntriesWithProduct(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		res := domain.ProductResponse{
			ID:   entry.Product.ID,
			Name: entry.Product.Name,
		}
		if entry.Product.ExternalImage != nil {
			res.ExternalImage = *entry.Product.ExternalImage
		}
		response = append(response, res)
	}
	return response, nil
}
