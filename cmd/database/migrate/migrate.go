package migration

import (
	"Recipe-Share-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Admin{}); err != nil {
		log.Fatalf("Error migrating admin table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Chef{}); err != nil {
		log.Fatalf("Error migrating chef table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodLover{}); err != nil {
		log.Fatalf("Error migrating food lover table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteRecipe{}); err != nil {
		log.Fatalf("Error migrating favorite recipe table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
