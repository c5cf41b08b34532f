package dashboard

import (
	"Cooking-Companion-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PopularDishRow struct {
		ID           uuid.UUID
		Name         string
		SessionCount int64
	}

	OutcomeRow struct {
		Outcome string
		Count   int64
	}

	DashboardRepository interface {
		CountRecipes(ctx context.Context) (int64, error)
		CountDishes(ctx context.Context) (int64, error)
		CountSessions(ctx context.Context) (int64, error)
		CountResults(ctx context.Context) (int64, error)
		CountAttachments(ctx context.Context) (int64, error)
		GetRecentSessions(ctx context.Context, limit int) ([]*entities.CookSession, error)
		GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetPopularDishes(ctx context.Context, limit int) ([]PopularDishRow, error)
		CountSessionsBetween(ctx context.Context, from, to time.Time) (int64, error)
		CountResultsByOutcome(ctx context.Context) ([]OutcomeRow, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountRecipes(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.Recipe{})
}

func (r *dashboardRepository) CountDishes(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.Dish{})
}

func (r *dashboardRepository) CountSessions(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.CookSession{})
}

func (r *dashboardRepository) CountResults(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.CookResult{})
}

func (r *dashboardRepository) CountAttachments(ctx context.Context) (int64, error) {
	return r.count(ctx, &entities.Attachment{})
}

func (r *dashboardRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dashboardRepository) GetRecentSessions(ctx context.Context, limit int) ([]*entities.CookSession, error) {
	var sessions []*entities.CookSession
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Preload("Recipe").
		Order("cooked_on desc, created_at desc").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *dashboardRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("updated_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *dashboardRepository) GetPopularDishes(ctx context.Context, limit int) ([]PopularDishRow, error) {
	var rows []PopularDishRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Dish{}).
		Select("dishes.id AS id, dishes.name AS name, COUNT(cook_sessions.id) AS session_count").
		Joins("LEFT JOIN cook_sessions ON cook_sessions.dish_id = dishes.id").
		Group("dishes.id, dishes.name").
		Order("session_count desc, name asc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) CountSessionsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("cooked_on >= ? AND cooked_on < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dashboardRepository) CountResultsByOutcome(ctx context.Context) ([]OutcomeRow, error) {
	var rows []OutcomeRow
	if err := r.db.WithContext(ctx).
		Model(&entities.CookResult{}).
		Select("outcome, COUNT(id) AS count").
		Group("outcome").
		Order("count desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
