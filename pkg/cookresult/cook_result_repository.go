package cookresult

import (
	"Cooking-Companion-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CookResultRepository interface {
		CreateCookResult(ctx context.Context, result *entities.CookResult) error
		GetCookResultByID(ctx context.Context, id string) (*entities.CookResult, error)
		GetResultBySessionID(ctx context.Context, sessionID string) (*entities.CookResult, error)
		GetResultsBySessionID(ctx context.Context, sessionID string) ([]*entities.CookResult, error)
		UpdateCookResult(ctx context.Context, result *entities.CookResult) error
		DeleteCookResultCascade(ctx context.Context, id string) error
	}

	cookResultRepository struct {
		db *gorm.DB
	}
)

func NewCookResultRepository(db *gorm.DB) CookResultRepository {
	return &cookResultRepository{db: db}
}

func (r *cookResultRepository) CreateCookResult(ctx context.Context, result *entities.CookResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *cookResultRepository) GetCookResultByID(ctx context.Context, id string) (*entities.CookResult, error) {
	var result entities.CookResult
	if err := r.db.WithContext(ctx).Preload("CookSession").Where("id = ?", id).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *cookResultRepository) GetResultBySessionID(ctx context.Context, sessionID string) (*entities.CookResult, error) {
	var result entities.CookResult
	if err := r.db.WithContext(ctx).
		Where("cook_session_id = ?", sessionID).
		Order("created_at asc").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *cookResultRepository) GetResultsBySessionID(ctx context.Context, sessionID string) ([]*entities.CookResult, error) {
	var results []*entities.CookResult
	if err := r.db.WithContext(ctx).
		Where("cook_session_id = ?", sessionID).
		Order("created_at asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cookResultRepository) UpdateCookResult(ctx context.Context, result *entities.CookResult) error {
	return r.db.WithContext(ctx).Save(result).Error
}

func (r *cookResultRepository) DeleteCookResultCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_type = ? AND parent_id = ?", entities.ParentTypeCookResult, id).Delete(&entities.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.CookResult{}).Error
	})
}
