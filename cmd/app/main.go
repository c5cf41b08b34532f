package main

import (
	"Cooking-Companion-Backend/cmd/config"
	migration "Cooking-Companion-Backend/cmd/database/migrate"
	"Cooking-Companion-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
