package recipe

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, req domain.ListRecipesRequest) ([]domain.RecipeResponse, int64, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Author:          req.Author,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		YieldText:       req.YieldText,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		IsFavorite:      req.IsFavorite,
		IsActive:        true,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.ListRecipesRequest) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, req.Query, req.FavoriteOnly, req.InactiveOnly, req.Page, req.Limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, count, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Author != nil {
		recipe.Author = *req.Author
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.YieldText != nil {
		recipe.YieldText = *req.YieldText
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.IsFavorite != nil {
		recipe.IsFavorite = *req.IsFavorite
	}
	if req.IsActive != nil {
		recipe.IsActive = *req.IsActive
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipeCascade(ctx, recipeID)
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Author:          recipe.Author,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		YieldText:       recipe.YieldText,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		IsFavorite:      recipe.IsFavorite,
		IsActive:        recipe.IsActive,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
}
