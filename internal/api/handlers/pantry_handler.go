package handlers

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/internal/api/presenters"
	"Pantry-Tracker/pkg/pantry"
	"Pantry-Tracker/pkg/shopping"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		GetPantry(c *fiber.Ctx) error
		PantryAction(c *fiber.Ctx) error
		GetPantryEntryDetails(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService   pantry.PantryService
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, shoppingService shopping.ShoppingService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService:   pantryService,
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	return h.renderPantry(c, fiber.StatusOK, c.Query("request_add") != "", domain.EmptyActionResponse())
}

func (h *pantryHandler) PantryAction(c *fiber.Ctx) error {
	values := formValues(c)
	sub, err := domain.ParseFormSubmission(values,
		domain.FormActionAdd,
		domain.FormActionDelete,
		domain.FormActionOpen,
		domain.FormActionCartAdd,
	)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	switch sub.Action {
	case domain.FormActionAdd:
		req := new(domain.AddPantryEntryRequest)
		if err := bindForm(c, req); err != nil {
			return err
		}
		err = h.addPantryEntry(ctx, *req)
	case domain.FormActionDelete:
		err = h.pantryService.DeletePantryEntry(ctx, sub.TargetID)
	case domain.FormActionOpen:
		err = h.pantryService.MarkAsOpened(ctx, sub.TargetID)
	case domain.FormActionCartAdd:
		err = h.shoppingService.AddToList(ctx, sub.TargetID)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownForm, sub.Action)
	}

	if err != nil {
		failure := actionFailure(c, err)
		return h.renderPantry(c, failure.StatusCode(), sub.Action == domain.FormActionAdd, failureResponse(failure, values))
	}
	return c.Redirect("/pantry", fiber.StatusSeeOther)
}

func (h *pantryHandler) GetPantryEntryDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	entry, err := h.pantryService.GetPantryEntryByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPantryEntryNotFound) {
			return presenters.Page(c, fiber.StatusNotFound, "not_found", fiber.Map{
				"title":   "Not found",
				"message": domain.ErrPantryEntryNotFound.Error(),
				"entry":   nil,
			})
		}
		return err
	}

	return presenters.Page(c, fiber.StatusOK, "pantry_detail", fiber.Map{
		"title": entry.Name,
		"entry": entry,
	})
}

func (h *pantryHandler) addPantryEntry(ctx context.Context, req domain.AddPantryEntryRequest) error {
	if err := h.validator.Struct(req); err != nil {
		return validationFailure(err)
	}
	_, err := h.pantryService.AddPantryEntry(ctx, req)
	return err
}

func (h *pantryHandler) renderPantry(c *fiber.Ctx, status int, requestAdd bool, action domain.ActionResponse) error {
	entries, err := h.pantryService.GetPantryEntries(c.UserContext())
	if err != nil {
		return err
	}

	return presenters.Page(c, status, "pantry", fiber.Map{
		"title":       "Pantry",
		"entries":     entries,
		"request_add": requestAdd,
		"errors":      action.Errors,
		"values":      action.Values,
	})
}
