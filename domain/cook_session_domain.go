package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSessions      = "success get cook sessions"
	MessageSuccessGetSessionDetail = "success get cook session detail"
	MessageSuccessCreateSession    = "cook session created successfully"
	MessageSuccessUpdateSession    = "cook session updated successfully"
	MessageSuccessDeleteSession    = "cook session deleted successfully"

	MessageFailedGetSessions      = "failed to get cook sessions"
	MessageFailedGetSessionDetail = "failed to get cook session detail"
	MessageFailedCreateSession    = "failed to create cook session"
	MessageFailedUpdateSession    = "failed to update cook session"
	MessageFailedDeleteSession    = "failed to delete cook session"

	ErrCookSessionNotFound = errors.New("cook session not found")
	ErrInvalidCookedOnDate = errors.New("invalid cooked_on date, expected YYYY-MM-DD")
)

type (
	CreateCookSessionRequest struct {
		DishID          string  `json:"dish_id" validate:"required,uuid"`
		RecipeID        string  `json:"recipe_id" validate:"omitempty,uuid"`
		CookedOn        string  `json:"cooked_on" validate:"omitempty,datetime=2006-01-02"`
		MealType        string  `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack dessert other"`
		Method          string  `json:"method" validate:"omitempty,oneof=stovetop oven grill air_fryer microwave no_cook other"`
		ServingsMade    float64 `json:"servings_made" validate:"min=0"`
		DurationMinutes int     `json:"duration_minutes" validate:"min=0"`
		Summary         string  `json:"summary" validate:"max=280"`
	}

	UpdateCookSessionRequest struct {
		DishID          string   `json:"dish_id" validate:"omitempty,uuid"`
		RecipeID        string   `json:"recipe_id" validate:"omitempty,uuid"`
		CookedOn        string   `json:"cooked_on" validate:"omitempty,datetime=2006-01-02"`
		MealType        string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack dessert other"`
		Method          string   `json:"method" validate:"omitempty,oneof=stovetop oven grill air_fryer microwave no_cook other"`
		ServingsMade    *float64 `json:"servings_made,omitempty" validate:"omitempty,min=0"`
		DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=0"`
		Summary         *string  `json:"summary,omitempty" validate:"omitempty,max=280"`
	}

	ListCookSessionsRequest struct {
		DishID   string
		When     string // today, week, month, past30
		MealType string
		Method   string
		Page     int
		Limit    int
	}

	CookSessionResponse struct {
		ID              string    `json:"id"`
		DishID          string    `json:"dish_id"`
		DishName        string    `json:"dish_name,omitempty"`
		RecipeID        string    `json:"recipe_id,omitempty"`
		RecipeTitle     string    `json:"recipe_title,omitempty"`
		CookedOn        string    `json:"cooked_on"`
		MealType        string    `json:"meal_type"`
		Method          string    `json:"method"`
		ServingsMade    float64   `json:"servings_made,omitempty"`
		DurationMinutes int       `json:"duration_minutes,omitempty"`
		Summary         string    `json:"summary,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
