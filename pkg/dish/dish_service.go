package dish

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishService interface {
		CreateDish(ctx context.Context, req domain.CreateDishRequest) (domain.DishResponse, error)
		GetDishDetail(ctx context.Context, dishID string) (domain.DishResponse, error)
		GetDishes(ctx context.Context, req domain.ListDishesRequest) ([]domain.DishResponse, int64, error)
		UpdateDish(ctx context.Context, dishID string, req domain.UpdateDishRequest) (domain.DishResponse, error)
		DeleteDish(ctx context.Context, dishID string) error
	}

	dishService struct {
		dishRepository   DishRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewDishService(dishRepository DishRepository, recipeRepository recipe.RecipeRepository) DishService {
	return &dishService{
		dishRepository:   dishRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *dishService) CreateDish(ctx context.Context, req domain.CreateDishRequest) (domain.DishResponse, error) {
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.DishResponse{}, domain.ErrParseUUID
	}

	// Referential integrity: the parent recipe must exist.
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrRecipeNotFound
		}
		return domain.DishResponse{}, err
	}

	dish := &entities.Dish{
		ID:          uuid.New(),
		RecipeID:    recipeUUID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.dishRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return s.toDishResponse(ctx, dish), nil
}

func (s *dishService) GetDishDetail(ctx context.Context, dishID string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}
	return s.toDishResponse(ctx, dish), nil
}

func (s *dishService) GetDishes(ctx context.Context, req domain.ListDishesRequest) ([]domain.DishResponse, int64, error) {
	dishes, count, err := s.dishRepository.GetDishes(ctx, req.Query, req.RecipeID, req.Page, req.Limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		result = append(result, s.toDishResponse(ctx, dish))
	}
	return result, count, nil
}

func (s *dishService) UpdateDish(ctx context.Context, dishID string, req domain.UpdateDishRequest) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if req.RecipeID != "" {
		recipeUUID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return domain.DishResponse{}, domain.ErrParseUUID
		}
		if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.DishResponse{}, domain.ErrRecipeNotFound
			}
			return domain.DishResponse{}, err
		}
		dish.RecipeID = recipeUUID
		dish.Recipe = nil
	}
	if req.Name != "" {
		dish.Name = req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.IsActive != nil {
		dish.IsActive = *req.IsActive
	}

	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}
	return s.toDishResponse(ctx, dish), nil
}

func (s *dishService) DeleteDish(ctx context.Context, dishID string) error {
	if _, err := s.dishRepository.GetDishByID(ctx, dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}
	return s.dishRepository.DeleteDishCascade(ctx, dishID)
}

func (s *dishService) toDishResponse(ctx context.Context, dish *entities.Dish) domain.DishResponse {
	sessionCount, err := s.dishRepository.CountCookSessions(ctx, dish.ID.String())
	if err != nil {
		sessionCount = 0
	}

	res := domain.DishResponse{
		ID:           dish.ID.String(),
		RecipeID:     dish.RecipeID.String(),
		Name:         dish.Name,
		Description:  dish.Description,
		IsActive:     dish.IsActive,
		SessionCount: sessionCount,
		CreatedAt:    dish.CreatedAt,
		UpdatedAt:    dish.UpdatedAt,
	}
	if dish.Recipe != nil {
		res.RecipeTitle = dish.Recipe.Title
	}
	return res
}
