package cooksession

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/pkg/dish"
	"Cooking-Companion-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookSessionService interface {
		CreateCookSession(ctx context.Context, req domain.CreateCookSessionRequest) (domain.CookSessionResponse, error)
		GetCookSessionDetail(ctx context.Context, sessionID string) (domain.CookSessionResponse, error)
		GetCookSessions(ctx context.Context, req domain.ListCookSessionsRequest) ([]domain.CookSessionResponse, int64, error)
		UpdateCookSession(ctx context.Context, sessionID string, req domain.UpdateCookSessionRequest) (domain.CookSessionResponse, error)
		DeleteCookSession(ctx context.Context, sessionID string) error
	}

	cookSessionService struct {
		sessionRepository CookSessionRepository
		dishRepository    dish.DishRepository
		recipeRepository  recipe.RecipeRepository
	}
)

func NewCookSessionService(sessionRepository CookSessionRepository, dishRepository dish.DishRepository, recipeRepository recipe.RecipeRepository) CookSessionService {
	return &cookSessionService{
		sessionRepository: sessionRepository,
		dishRepository:    dishRepository,
		recipeRepository:  recipeRepository,
	}
}

func (s *cookSessionService) CreateCookSession(ctx context.Context, req domain.CreateCookSessionRequest) (domain.CookSessionResponse, error) {
	dishUUID, err := uuid.Parse(req.DishID)
	if err != nil {
		return domain.CookSessionResponse{}, domain.ErrParseUUID
	}

	if _, err := s.dishRepository.GetDishByID(ctx, req.DishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookSessionResponse{}, domain.ErrDishNotFound
		}
		return domain.CookSessionResponse{}, err
	}

	var recipeUUID *uuid.UUID
	if req.RecipeID != "" {
		parsed, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return domain.CookSessionResponse{}, domain.ErrParseUUID
		}
		if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CookSessionResponse{}, domain.ErrRecipeNotFound
			}
			return domain.CookSessionResponse{}, err
		}
		recipeUUID = &parsed
	}

	cookedOn := truncateToDay(time.Now())
	if req.CookedOn != "" {
		cookedOn, err = time.Parse("2006-01-02", req.CookedOn)
		if err != nil {
			return domain.CookSessionResponse{}, domain.ErrInvalidCookedOnDate
		}
	}

	mealType := req.MealType
	if mealType == "" {
		mealType = entities.MealTypeOther
	}
	method := req.Method
	if method == "" {
		method = entities.CookMethodOther
	}

	session := &entities.CookSession{
		ID:              uuid.New(),
		DishID:          dishUUID,
		RecipeID:        recipeUUID,
		CookedOn:        cookedOn,
		MealType:        mealType,
		Method:          method,
		ServingsMade:    req.ServingsMade,
		DurationMinutes: req.DurationMinutes,
		Summary:         req.Summary,
	}

	if err := s.sessionRepository.CreateCookSession(ctx, session); err != nil {
		return domain.CookSessionResponse{}, err
	}

	return toCookSessionResponse(session), nil
}

func (s *cookSessionService) GetCookSessionDetail(ctx context.Context, sessionID string) (domain.CookSessionResponse, error) {
	session, err := s.sessionRepository.GetCookSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookSessionResponse{}, domain.ErrCookSessionNotFound
		}
		return domain.CookSessionResponse{}, err
	}
	return toCookSessionResponse(session), nil
}

func (s *cookSessionService) GetCookSessions(ctx context.Context, req domain.ListCookSessionsRequest) ([]domain.CookSessionResponse, int64, error) {
	sessions, count, err := s.sessionRepository.GetCookSessions(ctx, req.DishID, req.When, req.MealType, req.Method, req.Page, req.Limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.CookSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, toCookSessionResponse(session))
	}
	return result, count, nil
}

func (s *cookSessionService) UpdateCookSession(ctx context.Context, sessionID string, req domain.UpdateCookSessionRequest) (domain.CookSessionResponse, error) {
	session, err := s.sessionRepository.GetCookSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookSessionResponse{}, domain.ErrCookSessionNotFound
		}
		return domain.CookSessionResponse{}, err
	}

	if req.DishID != "" {
		dishUUID, err := uuid.Parse(req.DishID)
		if err != nil {
			return domain.CookSessionResponse{}, domain.ErrParseUUID
		}
		if _, err := s.dishRepository.GetDishByID(ctx, req.DishID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CookSessionResponse{}, domain.ErrDishNotFound
			}
			return domain.CookSessionResponse{}, err
		}
		session.DishID = dishUUID
		session.Dish = nil
	}
	if req.RecipeID != "" {
		recipeUUID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return domain.CookSessionResponse{}, domain.ErrParseUUID
		}
		if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CookSessionResponse{}, domain.ErrRecipeNotFound
			}
			return domain.CookSessionResponse{}, err
		}
		session.RecipeID = &recipeUUID
		session.Recipe = nil
	}
	if req.CookedOn != "" {
		cookedOn, err := time.Parse("2006-01-02", req.CookedOn)
		if err != nil {
			return domain.CookSessionResponse{}, domain.ErrInvalidCookedOnDate
		}
		session.CookedOn = cookedOn
	}
	if req.MealType != "" {
		session.MealType = req.MealType
	}
	if req.Method != "" {
		session.Method = req.Method
	}
	if req.ServingsMade != nil {
		session.ServingsMade = *req.ServingsMade
	}
	if req.DurationMinutes != nil {
		session.DurationMinutes = *req.DurationMinutes
	}
	if req.Summary != nil {
		session.Summary = *req.Summary
	}

	if err := s.sessionRepository.UpdateCookSession(ctx, session); err != nil {
		return domain.CookSessionResponse{}, err
	}
	return toCookSessionResponse(session), nil
}

func (s *cookSessionService) DeleteCookSession(ctx context.Context, sessionID string) error {
	if _, err := s.sessionRepository.GetCookSessionByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookSessionNotFound
		}
		return err
	}
	return s.sessionRepository.DeleteCookSessionCascade(ctx, sessionID)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toCookSessionResponse(session *entities.CookSession) domain.CookSessionResponse {
	res := domain.CookSessionResponse{
		ID:              session.ID.String(),
		DishID:          session.DishID.String(),
		CookedOn:        session.CookedOn.Format("2006-01-02"),
		MealType:        session.MealType,
		Method:          session.Method,
		ServingsMade:    session.ServingsMade,
		DurationMinutes: session.DurationMinutes,
		Summary:         session.Summary,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
	if session.RecipeID != nil {
		res.RecipeID = session.RecipeID.String()
	}
	if session.Dish != nil {
		res.DishName = session.Dish.Name
	}
	if session.Recipe != nil {
		res.RecipeTitle = session.Recipe.Title
	}
	return res
}
