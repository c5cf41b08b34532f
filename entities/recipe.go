package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title           string    `gorm:"index" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Author          string    `json:"author,omitempty"`
	Ingredients     string    `gorm:"type:text" json:"ingredients"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	YieldText       string    `json:"yield_text,omitempty"` // e.g. "Makes 12 cookies"
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	IsFavorite      bool      `json:"is_favorite"`
	IsActive        bool      `json:"is_active"`

	Dishes []*Dish `gorm:"foreignKey:RecipeID" json:"dishes,omitempty"`
	Timestamp
}
