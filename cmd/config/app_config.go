package config

import (
	"Pantry-Tracker/internal/api/handlers"
	"Pantry-Tracker/internal/api/presenters"
	"Pantry-Tracker/internal/api/routes"
	"Pantry-Tracker/internal/utils"
	"Pantry-Tracker/internal/utils/storage"
	"Pantry-Tracker/internal/views"
	"Pantry-Tracker/pkg/pantry"
	"Pantry-Tracker/pkg/product"
	"Pantry-Tracker/pkg/shopping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		Views:             views.NewEngine(),
		ErrorHandler:      presenters.ErrorHandler,
		EnablePrintRoutes: true,
		// bound form values are kept past the request
		Immutable:         true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetRateLimitMax(),
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	if s3 == nil {
		log.Info("AWS_S3_BUCKET not set, product image upload disabled")
	}

	// Repository
	productRepository := product.NewProductRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	productService := product.NewProductService(productRepository, s3)
	pantryService := pantry.NewPantryService(pantryRepository, utils.GetLocation())
	shoppingService := shopping.NewShoppingService(shoppingRepository)

	// Handler
	productHandler := handlers.NewProductHandler(productService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, shoppingService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PantryHandler:   pantryHandler,
		ProductHandler:  productHandler,
		ShoppingHandler: shoppingHandler,
	}
	routesConfig.Setup()
	return app, nil
}
