package routes

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/internal/api/handlers"
	"Pantry-Tracker/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	PantryHandler   handlers.PantryHandler
	ProductHandler  handlers.ProductHandler
	ShoppingHandler handlers.ShoppingHandler
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.Pantry()
	c.Products()
	c.ShoppingList()
	c.API()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/pantry", fiber.StatusSeeOther)
	})
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/pantry")
	pantry.Get("", c.PantryHandler.GetPantry)
	pantry.Post("", c.PantryHandler.PantryAction)
	pantry.Get("/:id", c.PantryHandler.GetPantryEntryDetails)
}

func (c *Config) Products() {
	products := c.App.Group("/products")
	products.Get("", c.ProductHandler.GetProducts)
	products.Post("", c.ProductHandler.ProductAction)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
	products.Post("/:id", c.ProductHandler.UpdateProduct)
}

func (c *Config) ShoppingList() {
	c.App.Get("/shopping-list", c.ShoppingHandler.GetShoppingList)
}

func (c *Config) API() {
	api := c.App.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
	api.Get("/products", c.ProductHandler.SearchProducts)
}
