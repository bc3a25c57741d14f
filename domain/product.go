package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetProducts = "products retrieved successfully"

	MessageInvalidName          = "Missing or invalid name"
	MessageInvalidExternalImage = "Missing or invalid external image"
	MessageUnsupportedImage     = "Unsupported image type"
	MessageUploadNotConfigured  = "Image upload is not configured"

	ErrProductNotFound   = errors.New("product not found")
	ErrProductNameExists = errors.New("product name already exists")
)

type (
	AddProductRequest struct {
		Name          string `json:"name" form:"name" validate:"required"`
		ExternalImage string `json:"externalImage" form:"externalImage" validate:"omitempty,http_url"`
	}

	UpdateExternalImageRequest struct {
		ExternalImage string `json:"externalImage" form:"externalImage" validate:"omitempty,http_url"`
	}

	UploadProductImageRequest struct {
		ProductID int64                 `json:"product_id" validate:"required,min=1"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProductResponse struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		ExternalImage string `json:"external_image,omitempty"`
	}
)
