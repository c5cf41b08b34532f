package recipe

import (
	"Cooking-Companion-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, query string, favoriteOnly, inactiveOnly bool, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipeCascade(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, query string, favoriteOnly, inactiveOnly bool, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("title LIKE ? OR author LIKE ? OR description LIKE ?", like, like, like)
	}
	if favoriteOnly {
		q = q.Where("is_favorite = ?", true)
	}
	if inactiveOnly {
		q = q.Where("is_active = ?", false)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.
		Offset(offset).
		Limit(limit).
		Order("updated_at desc, title asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipeCascade removes the recipe together with its dishes, their cook
// sessions, those sessions' results, and every attachment owned by any of the
// removed rows. Children go first so the foreign keys never dangle mid-flight.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dishIDs []uuid.UUID
		if err := tx.Model(&entities.Dish{}).Where("recipe_id = ?", id).Pluck("id", &dishIDs).Error; err != nil {
			return err
		}

		var sessionIDs []uuid.UUID
		if len(dishIDs) > 0 {
			if err := tx.Model(&entities.CookSession{}).Where("dish_id IN ?", dishIDs).Pluck("id", &sessionIDs).Error; err != nil {
				return err
			}
		}

		var resultIDs []uuid.UUID
		if len(sessionIDs) > 0 {
			if err := tx.Model(&entities.CookResult{}).Where("cook_session_id IN ?", sessionIDs).Pluck("id", &resultIDs).Error; err != nil {
				return err
			}
		}

		if len(resultIDs) > 0 {
			if err := tx.Where("parent_type = ? AND parent_id IN ?", entities.ParentTypeCookResult, resultIDs).Delete(&entities.Attachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", resultIDs).Delete(&entities.CookResult{}).Error; err != nil {
				return err
			}
		}

		if len(sessionIDs) > 0 {
			if err := tx.Where("parent_type = ? AND parent_id IN ?", entities.ParentTypeCookSession, sessionIDs).Delete(&entities.Attachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", sessionIDs).Delete(&entities.CookSession{}).Error; err != nil {
				return err
			}
		}

		if len(dishIDs) > 0 {
			if err := tx.Where("parent_type = ? AND parent_id IN ?", entities.ParentTypeDish, dishIDs).Delete(&entities.Attachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", dishIDs).Delete(&entities.Dish{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("parent_type = ? AND parent_id = ?", entities.ParentTypeRecipe, id).Delete(&entities.Attachment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}
