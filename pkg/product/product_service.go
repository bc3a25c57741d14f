package product

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils/storage"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, search string) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id int64) (domain.ProductResponse, error)
		UpdateExternalImage(ctx context.Context, id int64, req domain.UpdateExternalImageRequest) error
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) error
		DeleteProduct(ctx context.Context, id int64) error
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

// NewProductService accepts a nil storage, in which case image uploads are
// rejected as a form error.
func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error) {
	product := &entities.Product{
		Name: req.Name,
	}
	if req.ExternalImage != "" {
		image := req.ExternalImage
		product.ExternalImage = &image
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) GetProducts(ctx context.Context, search string) ([]domain.ProductResponse, error) {
	var (
		products []*entities.Product
		err      error
	)
	if search == "" {
		products, err = s.productRepository.GetProducts(ctx)
	} else {
		products, err = s.productRepository.SearchProducts(ctx, search)
	}
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	return response, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func (s *productService) UpdateExternalImage(ctx context.Context, id int64, req domain.UpdateExternalImageRequest) error {
	var image *string
	if req.ExternalImage != "" {
		image = &req.ExternalImage
	}

	rows, err := s.productRepository.UpdateExternalImage(ctx, id, image)
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Warnf("update external image: product %d does not exist", id)
	}
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) error {
	if s.s3 == nil {
		return domain.NewValidationFailure(domain.FieldErrors{"image": domain.MessageUploadNotConfigured})
	}

	product, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			log.Warnf("upload image: product %d does not exist", req.ProductID)
			return nil
		}
		return err
	}

	var oldKey string
	if product.ExternalImage != nil {
		oldKey = s.s3.GetObjectKeyFromLink(*product.ExternalImage)
	}

	fileName := fmt.Sprintf("product-%d-%s", product.ID, uuid.NewString())
	objectKey, err := s.s3.UploadFile(ctx, fileName, req.Image, "products", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFile) {
			return domain.NewValidationFailure(domain.FieldErrors{"image": domain.MessageUnsupportedImage})
		}
		return err
	}

	link := s.s3.GetPublicLinkKey(objectKey)
	if _, err := s.productRepository.UpdateExternalImage(ctx, product.ID, &link); err != nil {
		_ = s.s3.DeleteFile(ctx, objectKey)
		return err
	}

	if oldKey != "" && oldKey != objectKey {
		if err := s.s3.DeleteFile(ctx, oldKey); err != nil {
			log.Warnf("failed to delete replaced image %s: %v", oldKey, err)
		}
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	rows, err := s.productRepository.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Warnf("delete product: product %d does not exist", id)
	}
	return nil
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:   p.ID,
		Name: p.Name,
	}
	if p.ExternalImage != nil {
		res.ExternalImage = *p.ExternalImage
	}
	return res
}
