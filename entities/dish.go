package entities

import (
	"github.com/google/uuid"
)

type Dish struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	Name        string    `gorm:"index" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `json:"is_active"`

	Recipe       *Recipe        `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	CookSessions []*CookSession `gorm:"foreignKey:DishID" json:"cook_sessions,omitempty"`
	Timestamp
}
