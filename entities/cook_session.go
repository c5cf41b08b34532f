package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
	MealTypeDessert   = "dessert"
	MealTypeOther     = "other"

	CookMethodStovetop  = "stovetop"
	CookMethodOven      = "oven"
	CookMethodGrill     = "grill"
	CookMethodAirFryer  = "air_fryer"
	CookMethodMicrowave = "microwave"
	CookMethodNoCook    = "no_cook"
	CookMethodOther     = "other"
)

type CookSession struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DishID          uuid.UUID  `gorm:"type:uuid;index" json:"dish_id"`
	RecipeID        *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"` // recipe actually used, may differ from the dish default
	CookedOn        time.Time  `gorm:"type:date;index" json:"cooked_on"`
	MealType        string     `json:"meal_type"` // breakfast, lunch, dinner, snack, dessert, other
	Method          string     `json:"method"`    // stovetop, oven, grill, air_fryer, microwave, no_cook, other
	ServingsMade    float64    `json:"servings_made,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Summary         string     `json:"summary,omitempty"`

	Dish        *Dish         `gorm:"foreignKey:DishID" json:"dish,omitempty"`
	Recipe      *Recipe       `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	CookResults []*CookResult `gorm:"foreignKey:CookSessionID" json:"cook_results,omitempty"`
	Timestamp
}
