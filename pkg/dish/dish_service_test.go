package dish

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/pkg/recipe"
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

func newTestService(db *gorm.DB) DishService {
	return NewDishService(NewDishRepository(db), recipe.NewRecipeRepository(db))
}

func seedRecipe(t *testing.T, db *gorm.DB, title string) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{ID: uuid.New(), Title: title, IsActive: true}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestCreateDish(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "Pad Thai")

	created, err := service.CreateDish(ctx, domain.CreateDishRequest{
		RecipeID:    r.ID.String(),
		Name:        "Shrimp Pad Thai",
		Description: "With extra tamarind",
	})
	require.NoError(t, err)
	assert.Equal(t, r.ID.String(), created.RecipeID)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.SessionCount)

	got, err := service.GetDishDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shrimp Pad Thai", got.Name)
	assert.Equal(t, "Pad Thai", got.RecipeTitle)
}

func TestCreateDishRecipeMissing(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	_, err := service.CreateDish(context.Background(), domain.CreateDishRequest{
		RecipeID: uuid.NewString(),
		Name:     "Orphan Dish",
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetDishesByRecipe(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	first := seedRecipe(t, db, "Ramen")
	second := seedRecipe(t, db, "Udon")

	for _, name := range []string{"Shoyu Ramen", "Miso Ramen"} {
		_, err := service.CreateDish(ctx, domain.CreateDishRequest{RecipeID: first.ID.String(), Name: name})
		require.NoError(t, err)
	}
	_, err := service.CreateDish(ctx, domain.CreateDishRequest{RecipeID: second.ID.String(), Name: "Kitsune Udon"})
	require.NoError(t, err)

	dishes, count, err := service.GetDishes(ctx, domain.ListDishesRequest{RecipeID: first.ID.String(), Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Miso Ramen", dishes[0].Name)
	assert.Equal(t, "Shoyu Ramen", dishes[1].Name)
}

func TestDishSessionCount(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "Fried Rice")
	created, err := service.CreateDish(ctx, domain.CreateDishRequest{RecipeID: r.ID.String(), Name: "Kimchi Fried Rice"})
	require.NoError(t, err)

	dishID := uuid.MustParse(created.ID)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entities.CookSession{
			ID:       uuid.New(),
			DishID:   dishID,
			CookedOn: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			MealType: entities.MealTypeDinner,
			Method:   entities.CookMethodStovetop,
		}).Error)
	}

	got, err := service.GetDishDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.SessionCount)
}

func TestDeleteDishCascade(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "Curry")
	created, err := service.CreateDish(ctx, domain.CreateDishRequest{RecipeID: r.ID.String(), Name: "Green Curry"})
	require.NoError(t, err)
	dishID := uuid.MustParse(created.ID)

	session := &entities.CookSession{
		ID:       uuid.New(),
		DishID:   dishID,
		CookedOn: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		MealType: entities.MealTypeDinner,
		Method:   entities.CookMethodStovetop,
	}
	require.NoError(t, db.Create(session).Error)
	require.NoError(t, db.Create(&entities.CookResult{
		ID:            uuid.New(),
		CookSessionID: session.ID,
		Outcome:       entities.OutcomeNailedIt,
	}).Error)
	require.NoError(t, db.Create(&entities.Attachment{
		ID:         uuid.New(),
		ParentType: entities.ParentTypeDish,
		ParentID:   dishID,
		Kind:       entities.AttachmentKindNote,
		Body:       "double the basil",
	}).Error)

	require.NoError(t, service.DeleteDish(ctx, created.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Dish{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.CookSession{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.CookResult{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.Attachment{}).Count(&count).Error)
	assert.Zero(t, count)

	// The parent recipe stays.
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteDishNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	err := service.DeleteDish(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}
