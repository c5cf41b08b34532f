package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	CreateRecipeRequest struct {
		Title           string `json:"title" validate:"required,max=200"`
		Description     string `json:"description"`
		Author          string `json:"author" validate:"max=200"`
		Ingredients     string `json:"ingredients"`
		Instructions    string `json:"instructions"`
		YieldText       string `json:"yield_text" validate:"max=100"`
		PrepTimeMinutes int    `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int    `json:"cook_time_minutes" validate:"min=0"`
		IsFavorite      bool   `json:"is_favorite"`
	}

	UpdateRecipeRequest struct {
		Title           string  `json:"title" validate:"omitempty,max=200"`
		Description     *string `json:"description,omitempty"`
		Author          *string `json:"author,omitempty"`
		Ingredients     *string `json:"ingredients,omitempty"`
		Instructions    *string `json:"instructions,omitempty"`
		YieldText       *string `json:"yield_text,omitempty"`
		PrepTimeMinutes *int    `json:"prep_time_minutes,omitempty" validate:"omitempty,min=0"`
		CookTimeMinutes *int    `json:"cook_time_minutes,omitempty" validate:"omitempty,min=0"`
		IsFavorite      *bool   `json:"is_favorite,omitempty"`
		IsActive        *bool   `json:"is_active,omitempty"`
	}

	ListRecipesRequest struct {
		Query        string
		FavoriteOnly bool
		InactiveOnly bool
		Page         int
		Limit        int
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		Author          string    `json:"author,omitempty"`
		Ingredients     string    `json:"ingredients"`
		Instructions    string    `json:"instructions"`
		YieldText       string    `json:"yield_text,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		IsFavorite      bool      `json:"is_favorite"`
		IsActive        bool      `json:"is_active"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
