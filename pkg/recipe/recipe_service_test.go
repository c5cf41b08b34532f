package recipe

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Single connection so every query hits the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.Recipe{},
		&entities.Dish{},
		&entities.CookSession{},
		&entities.CookResult{},
		&entities.Attachment{},
	))
	return db
}

func TestCreateAndGetRecipe(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:           "Weeknight Dal",
		Author:          "Meera Sodha",
		Ingredients:     "red lentils, turmeric, garlic",
		Instructions:    "Simmer lentils, temper spices, combine.",
		YieldText:       "4 servings",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 30,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsFavorite)

	got, err := service.GetRecipeDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weeknight Dal", got.Title)
	assert.Equal(t, "Meera Sodha", got.Author)
	assert.Equal(t, 30, got.CookTimeMinutes)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	_, err := service.GetRecipeDetail(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateRecipePartial(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Shakshuka",
		Description: "Eggs in tomato sauce",
	})
	require.NoError(t, err)

	favorite := true
	updated, err := service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		IsFavorite: &favorite,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "Shakshuka", updated.Title)
	assert.Equal(t, "Eggs in tomato sauce", updated.Description)

	inactive := false
	updated, err = service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Title:    "Shakshuka with Feta",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka with Feta", updated.Title)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.IsFavorite)
}

func TestGetRecipesFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "Miso Soup", IsFavorite: true})
	require.NoError(t, err)
	_, err = service.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "Miso Glazed Salmon"})
	require.NoError(t, err)
	retired, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "Beef Wellington"})
	require.NoError(t, err)

	inactive := false
	_, err = service.UpdateRecipe(ctx, retired.ID, domain.UpdateRecipeRequest{IsActive: &inactive})
	require.NoError(t, err)

	results, count, err := service.GetRecipes(ctx, domain.ListRecipesRequest{Query: "miso", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, results, 2)

	results, count, err = service.GetRecipes(ctx, domain.ListRecipesRequest{FavoriteOnly: true, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, "Miso Soup", results[0].Title)

	results, count, err = service.GetRecipes(ctx, domain.ListRecipesRequest{InactiveOnly: true, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, "Beef Wellington", results[0].Title)
}

func TestDeleteRecipeCascade(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "Sourdough"})
	require.NoError(t, err)
	recipeID := uuid.MustParse(created.ID)

	dish := &entities.Dish{ID: uuid.New(), RecipeID: recipeID, Name: "Country Loaf", IsActive: true}
	require.NoError(t, db.Create(dish).Error)

	session := &entities.CookSession{
		ID:       uuid.New(),
		DishID:   dish.ID,
		CookedOn: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		MealType: entities.MealTypeOther,
		Method:   entities.CookMethodOven,
	}
	require.NoError(t, db.Create(session).Error)

	result := &entities.CookResult{ID: uuid.New(), CookSessionID: session.ID, Outcome: entities.OutcomeGood}
	require.NoError(t, db.Create(result).Error)

	for parentType, parentID := range map[string]uuid.UUID{
		entities.ParentTypeRecipe:      recipeID,
		entities.ParentTypeDish:        dish.ID,
		entities.ParentTypeCookSession: session.ID,
		entities.ParentTypeCookResult:  result.ID,
	} {
		require.NoError(t, db.Create(&entities.Attachment{
			ID:         uuid.New(),
			ParentType: parentType,
			ParentID:   parentID,
			Kind:       entities.AttachmentKindNote,
			Body:       "keep an eye on the crust",
		}).Error)
	}

	require.NoError(t, service.DeleteRecipe(ctx, created.ID))

	var count int64
	for _, model := range []interface{}{
		&entities.Recipe{},
		&entities.Dish{},
		&entities.CookSession{},
		&entities.CookResult{},
		&entities.Attachment{},
	} {
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestDeleteRecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	err := service.DeleteRecipe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
