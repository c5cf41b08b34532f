package cooksession

import (
	"Cooking-Companion-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookSessionRepository interface {
		CreateCookSession(ctx context.Context, session *entities.CookSession) error
		GetCookSessionByID(ctx context.Context, id string) (*entities.CookSession, error)
		GetCookSessions(ctx context.Context, dishID, when, mealType, method string, page, limit int) ([]*entities.CookSession, int64, error)
		UpdateCookSession(ctx context.Context, session *entities.CookSession) error
		DeleteCookSessionCascade(ctx context.Context, id string) error
	}

	cookSessionRepository struct {
		db *gorm.DB
	}
)

func NewCookSessionRepository(db *gorm.DB) CookSessionRepository {
	return &cookSessionRepository{db: db}
}

func (r *cookSessionRepository) CreateCookSession(ctx context.Context, session *entities.CookSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *cookSessionRepository) GetCookSessionByID(ctx context.Context, id string) (*entities.CookSession, error) {
	var session entities.CookSession
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Preload("Recipe").
		Where("id = ?", id).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *cookSessionRepository) GetCookSessions(ctx context.Context, dishID, when, mealType, method string, page, limit int) ([]*entities.CookSession, int64, error) {
	var sessions []*entities.CookSession
	var count int64
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&entities.CookSession{})
	if dishID != "" {
		q = q.Where("dish_id = ?", dishID)
	}
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	if method != "" {
		q = q.Where("method = ?", method)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch when {
	case "today":
		q = q.Where("cooked_on >= ? AND cooked_on < ?", today, today.AddDate(0, 0, 1))
	case "week":
		q = q.Where("cooked_on >= ? AND cooked_on < ?", today.AddDate(0, 0, 1), today.AddDate(0, 0, 8))
	case "month":
		q = q.Where("cooked_on >= ? AND cooked_on < ?", today.AddDate(0, 0, 1), today.AddDate(0, 0, 31))
	case "past30":
		q = q.Where("cooked_on >= ? AND cooked_on < ?", today.AddDate(0, 0, -30), today.AddDate(0, 0, 1))
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.
		Preload("Dish").
		Preload("Recipe").
		Offset(offset).
		Limit(limit).
		Order("cooked_on desc, created_at desc").
		Find(&sessions).Error; err != nil {
		return nil, 0, err
	}

	return sessions, count, nil
}

func (r *cookSessionRepository) UpdateCookSession(ctx context.Context, session *entities.CookSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// DeleteCookSessionCascade removes the session, its results, and all
// attachments owned by the removed rows inside one transaction.
func (r *cookSessionRepository) DeleteCookSessionCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resultIDs []uuid.UUID
		if err := tx.Model(&entities.CookResult{}).Where("cook_session_id = ?", id).Pluck("id", &resultIDs).Error; err != nil {
			return err
		}

		if len(resultIDs) > 0 {
			if err := tx.Where("parent_type = ? AND parent_id IN ?", entities.ParentTypeCookResult, resultIDs).Delete(&entities.Attachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", resultIDs).Delete(&entities.CookResult{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("parent_type = ? AND parent_id = ?", entities.ParentTypeCookSession, id).Delete(&entities.Attachment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&entities.CookSession{}).Error
	})
}
