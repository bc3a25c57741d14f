package migration

import (
	"Pantry-Tracker/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Product{},
		&entities.PantryEntry{},
		&entities.ShoppableEntry{},
	); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
