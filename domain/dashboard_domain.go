package domain

var (
	MessageSuccessGetDashboard = "success get dashboard"
	MessageFailedGetDashboard  = "failed to get dashboard"
)

type (
	DashboardCounts struct {
		Recipes     int64 `json:"recipes"`
		Dishes      int64 `json:"dishes"`
		Sessions    int64 `json:"sessions"`
		Results     int64 `json:"results"`
		Attachments int64 `json:"attachments"`
	}

	SessionBucket struct {
		Label string `json:"label"`
		Count int64  `json:"count"`
		When  string `json:"when"` // query value for the session list filter
	}

	OutcomeCount struct {
		Outcome string `json:"outcome"`
		Count   int64  `json:"count"`
	}

	PopularDish struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		SessionCount int64  `json:"session_count"`
	}

	DashboardResponse struct {
		Counts         DashboardCounts       `json:"counts"`
		RecentSessions []CookSessionResponse `json:"recent_sessions"`
		RecentRecipes  []RecipeResponse      `json:"recent_recipes"`
		PopularDishes  []PopularDish         `json:"popular_dishes"`
		SessionBuckets []SessionBucket       `json:"session_buckets"`
		TopOutcomes    []OutcomeCount        `json:"top_outcomes"`
	}
)
