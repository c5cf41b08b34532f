package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDishes     = "success get dishes"
	MessageSuccessGetDishDetail = "success get dish detail"
	MessageSuccessCreateDish    = "dish created successfully"
	MessageSuccessUpdateDish    = "dish updated successfully"
	MessageSuccessDeleteDish    = "dish deleted successfully"

	MessageFailedGetDishes     = "failed to get dishes"
	MessageFailedGetDishDetail = "failed to get dish detail"
	MessageFailedCreateDish    = "failed to create dish"
	MessageFailedUpdateDish    = "failed to update dish"
	MessageFailedDeleteDish    = "failed to delete dish"

	ErrDishNotFound = errors.New("dish not found")
)

type (
	CreateDishRequest struct {
		RecipeID    string `json:"recipe_id" validate:"required,uuid"`
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description"`
	}

	UpdateDishRequest struct {
		RecipeID    string  `json:"recipe_id" validate:"omitempty,uuid"`
		Name        string  `json:"name" validate:"omitempty,max=200"`
		Description *string `json:"description,omitempty"`
		IsActive    *bool   `json:"is_active,omitempty"`
	}

	ListDishesRequest struct {
		Query    string
		RecipeID string
		Page     int
		Limit    int
	}

	DishResponse struct {
		ID           string    `json:"id"`
		RecipeID     string    `json:"recipe_id"`
		RecipeTitle  string    `json:"recipe_title,omitempty"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		IsActive     bool      `json:"is_active"`
		SessionCount int64     `json:"session_count"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
