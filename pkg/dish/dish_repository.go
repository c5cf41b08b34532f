package dish

import (
	"Cooking-Companion-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishRepository interface {
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetDishes(ctx context.Context, query, recipeID string, page, limit int) ([]*entities.Dish, int64, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error
		DeleteDishCascade(ctx context.Context, id string) error
		CountCookSessions(ctx context.Context, dishID string) (int64, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Preload("Recipe").Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetDishes(ctx context.Context, query, recipeID string, page, limit int) ([]*entities.Dish, int64, error) {
	var dishes []*entities.Dish
	var count int64
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&entities.Dish{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if recipeID != "" {
		q = q.Where("recipe_id = ?", recipeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.
		Preload("Recipe").
		Offset(offset).
		Limit(limit).
		Order("name asc").
		Find(&dishes).Error; err != nil {
		return nil, 0, err
	}

	return dishes, count, nil
}

func (r *dishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

// DeleteDishCascade removes the dish, its cook sessions, their results, and
// all attachments owned by the removed rows inside one transaction.
func (r *dishRepository) DeleteDishCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionIDs []uuid.UUID
		if err := tx.Model(&entities.CookSession{}).Where("dish_id = ?", id).Pluck("id", &sessionIDs).Error; err != nil {
			return err
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

		if err := tx.Where("parent_type = ? AND parent_id = ?", entities.ParentTypeDish, id).Delete(&entities.Attachment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&entities.Dish{}).Error
	})
}

func (r *dishRepository) CountCookSessions(ctx context.Context, dishID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("dish_id = ?", dishID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
