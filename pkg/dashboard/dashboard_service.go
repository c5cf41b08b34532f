package dashboard

import (
	"Cooking-Companion-Backend/domain"
	"context"
	"time"
)

type (
	DashboardService interface {
		GetDashboard(ctx context.Context) (domain.DashboardResponse, error)
	}

	dashboardService struct {
		dashboardRepository DashboardRepository
	}
)

func NewDashboardService(dashboardRepository DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepository: dashboardRepository}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (domain.DashboardResponse, error) {
	var res domain.DashboardResponse
	var err error

	if res.Counts.Recipes, err = s.dashboardRepository.CountRecipes(ctx); err != nil {
		return domain.DashboardResponse{}, err
	}
	if res.Counts.Dishes, err = s.dashboardRepository.CountDishes(ctx); err != nil {
		return domain.DashboardResponse{}, err
	}
	if res.Counts.Sessions, err = s.dashboardRepository.CountSessions(ctx); err != nil {
		return domain.DashboardResponse{}, err
	}
	if res.Counts.Results, err = s.dashboardRepository.CountResults(ctx); err != nil {
		return domain.DashboardResponse{}, err
	}
	if res.Counts.Attachments, err = s.dashboardRepository.CountAttachments(ctx); err != nil {
		return domain.DashboardResponse{}, err
	}

	sessions, err := s.dashboardRepository.GetRecentSessions(ctx, 10)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	res.RecentSessions = make([]domain.CookSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		item := domain.CookSessionResponse{
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
		if session.Dish != nil {
			item.DishName = session.Dish.Name
		}
		if session.Recipe != nil {
			item.RecipeID = session.Recipe.ID.String()
			item.RecipeTitle = session.Recipe.Title
		}
		res.RecentSessions = append(res.RecentSessions, item)
	}

	recipes, err := s.dashboardRepository.GetRecentRecipes(ctx, 8)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	res.RecentRecipes = make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res.RecentRecipes = append(res.RecentRecipes, domain.RecipeResponse{
			ID:              recipe.ID.String(),
			Title:           recipe.Title,
			Description:     recipe.Description,
			Author:          recipe.Author,
			YieldText:       recipe.YieldText,
			PrepTimeMinutes: recipe.PrepTimeMinutes,
			CookTimeMinutes: recipe.CookTimeMinutes,
			IsFavorite:      recipe.IsFavorite,
			IsActive:        recipe.IsActive,
			CreatedAt:       recipe.CreatedAt,
			UpdatedAt:       recipe.UpdatedAt,
		})
	}

	popular, err := s.dashboardRepository.GetPopularDishes(ctx, 8)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	res.PopularDishes = make([]domain.PopularDish, 0, len(popular))
	for _, row := range popular {
		res.PopularDishes = append(res.PopularDishes, domain.PopularDish{
			ID:           row.ID.String(),
			Name:         row.Name,
			SessionCount: row.SessionCount,
		})
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	buckets := []struct {
		label string
		when  string
		from  time.Time
		to    time.Time
	}{
		{"Today", "today", today, tomorrow},
		{"Next 7 days", "week", tomorrow, today.AddDate(0, 0, 8)},
		{"Next 30 days", "month", tomorrow, today.AddDate(0, 0, 31)},
		{"Past 30 days", "past30", today.AddDate(0, 0, -30), tomorrow},
	}
	res.SessionBuckets = make([]domain.SessionBucket, 0, len(buckets))
	for _, bucket := range buckets {
		count, err := s.dashboardRepository.CountSessionsBetween(ctx, bucket.from, bucket.to)
		if err != nil {
			return domain.DashboardResponse{}, err
		}
		res.SessionBuckets = append(res.SessionBuckets, domain.SessionBucket{
			Label: bucket.label,
			Count: count,
			When:  bucket.when,
		})
	}

	outcomes, err := s.dashboardRepository.CountResultsByOutcome(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	res.TopOutcomes = make([]domain.OutcomeCount, 0, len(outcomes))
	for _, row := range outcomes {
		res.TopOutcomes = append(res.TopOutcomes, domain.OutcomeCount{
			Outcome: row.Outcome,
			Count:   row.Count,
		})
	}

	return res, nil
}
