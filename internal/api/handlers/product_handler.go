package handlers

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/internal/api/presenters"
	"Pantry-Tracker/pkg/product"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
		ProductAction(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	return h.renderProducts(c, fiber.StatusOK, c.Query("search"), c.Query("request_add") != "", domain.EmptyActionResponse())
}

func (h *productHandler) ProductAction(c *fiber.Ctx) error {
	values := formValues(c)
	sub, err := domain.ParseFormSubmission(values, domain.FormActionAdd, domain.FormActionDelete)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	switch sub.Action {
	case domain.FormActionAdd:
		req := new(domain.AddProductRequest)
		if err := bindForm(c, req); err != nil {
			return err
		}
		err = h.addProduct(ctx, *req)
	case domain.FormActionDelete:
		err = h.productService.DeleteProduct(ctx, sub.TargetID)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownForm, sub.Action)
	}

	if err != nil {
		failure := actionFailure(c, err)
		return h.renderProducts(c, failure.StatusCode(), "", sub.Action == domain.FormActionAdd, failureResponse(failure, values))
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

func (h *productHandler) GetProductDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	return h.renderProductDetail(c, fiber.StatusOK, id, domain.EmptyActionResponse())
}

// UpdateProduct stores an uploaded image when the form carries one, otherwise
// the externalImage field, which must be present but may be empty.
func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	values := formValues(c)
	ctx := c.UserContext()

	if file, fileErr := c.FormFile("image"); fileErr == nil && file.Size > 0 {
		err = h.uploadImage(ctx, domain.UploadProductImageRequest{ProductID: id, Image: file})
	} else if _, ok := values["externalImage"]; !ok {
		err = domain.NewValidationFailure(domain.FieldErrors{"externalImage": domain.MessageInvalidExternalImage})
	} else {
		req := new(domain.UpdateExternalImageRequest)
		if err := bindForm(c, req); err != nil {
			return err
		}
		err = h.updateExternalImage(ctx, id, *req)
	}

	if err != nil {
		failure := actionFailure(c, err)
		return h.renderProductDetail(c, failure.StatusCode(), id, failureResponse(failure, values))
	}
	return c.Redirect("/products/"+strconv.FormatInt(id, 10), fiber.StatusSeeOther)
}

func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProducts(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) addProduct(ctx context.Context, req domain.AddProductRequest) error {
	if err := h.validator.Struct(req); err != nil {
		return validationFailure(err)
	}
	_, err := h.productService.AddProduct(ctx, req)
	return err
}

func (h *productHandler) updateExternalImage(ctx context.Context, id int64, req domain.UpdateExternalImageRequest) error {
	if err := h.validator.Struct(req); err != nil {
		return validationFailure(err)
	}
	return h.productService.UpdateExternalImage(ctx, id, req)
}

func (h *productHandler) uploadImage(ctx context.Context, req domain.UploadProductImageRequest) error {
	if err := h.validator.Struct(req); err != nil {
		return validationFailure(err)
	}
	return h.productService.UploadProductImage(ctx, req)
}

func (h *productHandler) renderProducts(c *fiber.Ctx, status int, search string, requestAdd bool, action domain.ActionResponse) error {
	products, err := h.productService.GetProducts(c.UserContext(), search)
	if err != nil {
		return err
	}

	return presenters.Page(c, status, "products", fiber.Map{
		"title":       "Products",
		"products":    products,
		"search":      search,
		"request_add": requestAdd,
		"errors":      action.Errors,
		"values":      action.Values,
	})
}

func (h *productHandler) renderProductDetail(c *fiber.Ctx, status int, id int64, action domain.ActionResponse) error {
	p, err := h.productService.GetProductByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.Page(c, fiber.StatusNotFound, "not_found", fiber.Map{
				"title":   "Not found",
				"message": domain.ErrProductNotFound.Error(),
				"product": nil,
			})
		}
		return err
	}

	return presenters.Page(c, status, "product_detail", fiber.Map{
		"title":   p.Name,
		"product": p,
		"errors":  action.Errors,
		"values":  action.Values,
	})
}
