package config

import (
	"Cooking-Companion-Backend/internal/api/handlers"
	"Cooking-Companion-Backend/internal/api/routes"
	"Cooking-Companion-Backend/internal/middleware"
	"Cooking-Companion-Backend/internal/utils"
	"Cooking-Companion-Backend/internal/utils/storage"
	"Cooking-Companion-Backend/pkg/attachment"
	"Cooking-Companion-Backend/pkg/cookresult"
	"Cooking-Companion-Backend/pkg/cooksession"
	"Cooking-Companion-Backend/pkg/dashboard"
	"Cooking-Companion-Backend/pkg/dish"
	"Cooking-Companion-Backend/pkg/recipe"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
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
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	dishRepository := dish.NewDishRepository(db)
	sessionRepository := cooksession.NewCookSessionRepository(db)
	resultRepository := cookresult.NewCookResultRepository(db)
	attachmentRepository := attachment.NewAttachmentRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository)
	dishService := dish.NewDishService(dishRepository, recipeRepository)
	sessionService := cooksession.NewCookSessionService(sessionRepository, dishRepository, recipeRepository)
	resultService := cookresult.NewCookResultService(resultRepository, sessionRepository)
	attachmentService := attachment.NewAttachmentService(attachmentRepository, s3)
	dashboardService := dashboard.NewDashboardService(dashboardRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	sessionHandler := handlers.NewCookSessionHandler(sessionService, validator)
	resultHandler := handlers.NewCookResultHandler(resultService, validator)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		RecipeHandler:      recipeHandler,
		DishHandler:        dishHandler,
		CookSessionHandler: sessionHandler,
		CookResultHandler:  resultHandler,
		AttachmentHandler:  attachmentHandler,
		DashboardHandler:   dashboardHandler,
		Middleware:         middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
