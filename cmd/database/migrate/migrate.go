package migration

import (
	"Cooking-Companion-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		log.Fatalf("Error migrating dish database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CookSession{}); err != nil {
		log.Fatalf("Error migrating cook session database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CookResult{}); err != nil {
		log.Fatalf("Error migrating cook result database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Attachment{}); err != nil {
		log.Fatalf("Error migrating attachment database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
