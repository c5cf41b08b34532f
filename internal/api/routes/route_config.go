package routes

import (
	"Cooking-Companion-Backend/internal/api/handlers"
	"Cooking-Companion-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	RecipeHandler      handlers.RecipeHandler
	DishHandler        handlers.DishHandler
	CookSessionHandler handlers.CookSessionHandler
	CookResultHandler  handlers.CookResultHandler
	AttachmentHandler  handlers.AttachmentHandler
	DashboardHandler   handlers.DashboardHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Dashboard()
	c.Recipes()
	c.Dishes()
	c.CookSessions()
	c.CookResults()
	c.Attachments()
	c.GuestRoute()
}

func (c *Config) Dashboard() {
	c.App.Get("/api/v1/dashboard", c.DashboardHandler.GetDashboard)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes")
	{
		dishes.Post("", c.DishHandler.CreateDish)
		dishes.Get("", c.DishHandler.GetDishes)
		dishes.Get("/:id", c.DishHandler.GetDishDetail)
		dishes.Put("/:id", c.DishHandler.UpdateDish)
		dishes.Delete("/:id", c.DishHandler.DeleteDish)
	}
}

func (c *Config) CookSessions() {
	sessions := c.App.Group("/api/v1/sessions")
	{
		sessions.Post("", c.CookSessionHandler.CreateCookSession)
		sessions.Get("", c.CookSessionHandler.GetCookSessions)
		sessions.Get("/:id", c.CookSessionHandler.GetCookSessionDetail)
		sessions.Put("/:id", c.CookSessionHandler.UpdateCookSession)
		sessions.Delete("/:id", c.CookSessionHandler.DeleteCookSession)

		// result lives under its session for the edit flow
		sessions.Put("/:id/result", c.CookResultHandler.SaveResultForSession)
		sessions.Get("/:id/results", c.CookResultHandler.GetResultsForSession)
	}
}

func (c *Config) CookResults() {
	results := c.App.Group("/api/v1/results")
	{
		results.Get("/:id", c.CookResultHandler.GetCookResultDetail)
		results.Delete("/:id", c.CookResultHandler.DeleteCookResult)
	}
}

func (c *Config) Attachments() {
	targets := c.App.Group("/api/v1/targets/:type/:id")
	{
		targets.Post("/attachments", c.AttachmentHandler.CreateAttachment)
		targets.Post("/attachments/file", c.AttachmentHandler.UploadAttachment)
		targets.Get("/attachments", c.AttachmentHandler.GetAttachments)
	}
	c.App.Delete("/api/v1/attachments/:id", c.AttachmentHandler.DeleteAttachment)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
