package cookresult

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/pkg/cooksession"
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

func newTestService(db *gorm.DB) CookResultService {
	return NewCookResultService(NewCookResultRepository(db), cooksession.NewCookSessionRepository(db))
}

func seedSession(t *testing.T, db *gorm.DB) *entities.CookSession {
	t.Helper()
	r := &entities.Recipe{ID: uuid.New(), Title: "Carbonara", IsActive: true}
	require.NoError(t, db.Create(r).Error)
	d := &entities.Dish{ID: uuid.New(), RecipeID: r.ID, Name: "Spaghetti Carbonara", IsActive: true}
	require.NoError(t, db.Create(d).Error)
	s := &entities.CookSession{
		ID:       uuid.New(),
		DishID:   d.ID,
		CookedOn: time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC),
		MealType: entities.MealTypeDinner,
		Method:   entities.CookMethodStovetop,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestSaveResultCreatesThenUpdates(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	session := seedSession(t, db)

	overall := 7
	first, err := service.SaveResultForSession(ctx, session.ID.String(), domain.SaveCookResultRequest{
		Outcome:       entities.OutcomeGood,
		OverallRating: &overall,
		WhatWorked:    "guanciale instead of bacon",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeGood, first.Outcome)
	assert.Equal(t, 7, *first.OverallRating)

	better := 9
	second, err := service.SaveResultForSession(ctx, session.ID.String(), domain.SaveCookResultRequest{
		Outcome:        entities.OutcomeNailedIt,
		OverallRating:  &better,
		WouldMakeAgain: true,
	})
	require.NoError(t, err)

	// Same record, overwritten.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entities.OutcomeNailedIt, second.Outcome)
	assert.Equal(t, 9, *second.OverallRating)
	assert.True(t, second.WouldMakeAgain)

	var count int64
	require.NoError(t, db.Model(&entities.CookResult{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveResultDefaultOutcome(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	session := seedSession(t, db)
	saved, err := service.SaveResultForSession(context.Background(), session.ID.String(), domain.SaveCookResultRequest{})
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeExperiment, saved.Outcome)
}

func TestSaveResultSessionMissing(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	_, err := service.SaveResultForSession(context.Background(), uuid.NewString(), domain.SaveCookResultRequest{})
	assert.ErrorIs(t, err, domain.ErrCookSessionNotFound)
}

func TestGetResultsForSession(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	session := seedSession(t, db)
	_, err := service.SaveResultForSession(ctx, session.ID.String(), domain.SaveCookResultRequest{
		Outcome: entities.OutcomeOkay,
	})
	require.NoError(t, err)

	results, err := service.GetResultsForSession(ctx, session.ID.String())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, session.ID.String(), results[0].CookSessionID)

	_, err = service.GetResultsForSession(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCookSessionNotFound)
}

func TestDeleteCookResult(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	ctx := context.Background()

	session := seedSession(t, db)
	saved, err := service.SaveResultForSession(ctx, session.ID.String(), domain.SaveCookResultRequest{
		Outcome: entities.OutcomeFail,
	})
	require.NoError(t, err)

	require.NoError(t, db.Create(&entities.Attachment{
		ID:         uuid.New(),
		ParentType: entities.ParentTypeCookResult,
		ParentID:   uuid.MustParse(saved.ID),
		Kind:       entities.AttachmentKindNote,
		Body:       "oven ran hot",
	}).Error)

	require.NoError(t, service.DeleteCookResult(ctx, saved.ID))

	var count int64
	require.NoError(t, db.Model(&entities.CookResult{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.Attachment{}).Count(&count).Error)
	assert.Zero(t, count)

	// Session survives its result.
	require.NoError(t, db.Model(&entities.CookSession{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	err = service.DeleteCookResult(ctx, saved.ID)
	assert.ErrorIs(t, err, domain.ErrCookResultNotFound)
}
