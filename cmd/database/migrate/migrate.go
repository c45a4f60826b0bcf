package migration

import (
	"Recipe-Share/entities"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrating user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.Ingredient{}, &entities.Step{}); err != nil {
		return fmt.Errorf("migrating recipe tables: %w", err)
	}
	if err := db.AutoMigrate(&entities.Favourite{}); err != nil {
		return fmt.Errorf("migrating favourite table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
