package handlers

import (
	"Pantry-Tracker/internal/api/presenters"
	"Pantry-Tracker/pkg/shopping"

	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	products, err := h.shoppingService.GetShoppingList(c.UserContext())
	if err != nil {
		return err
	}

	return presenters.Page(c, fiber.StatusOK, "shopping_list", fiber.Map{
		"title":    "Shopping list",
		"products": products,
	})
}
