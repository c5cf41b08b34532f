package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetResults      = "success get cook results"
	MessageSuccessGetResultDetail = "success get cook result detail"
	MessageSuccessSaveResult      = "cook result saved successfully"
	MessageSuccessDeleteResult    = "cook result deleted successfully"

	MessageFailedGetResults      = "failed to get cook results"
	MessageFailedGetResultDetail = "failed to get cook result detail"
	MessageFailedSaveResult      = "failed to save cook result"
	MessageFailedDeleteResult    = "failed to delete cook result"

	ErrCookResultNotFound = errors.New("cook result not found")
)

type (
	SaveCookResultRequest struct {
		Outcome          string `json:"outcome" validate:"omitempty,oneof=nailed_it good okay fail experiment"`
		OverallRating    *int   `json:"overall_rating,omitempty" validate:"omitempty,min=1,max=10"`
		TasteRating      *int   `json:"taste_rating,omitempty" validate:"omitempty,min=1,max=10"`
		TextureRating    *int   `json:"texture_rating,omitempty" validate:"omitempty,min=1,max=10"`
		AppearanceRating *int   `json:"appearance_rating,omitempty" validate:"omitempty,min=1,max=10"`
		WouldMakeAgain   bool   `json:"would_make_again"`
		WhatWorked       string `json:"what_worked"`
		WhatToChange     string `json:"what_to_change"`
		NextTimePlan     string `json:"next_time_plan"`
	}

	CookResultResponse struct {
		ID               string    `json:"id"`
		CookSessionID    string    `json:"cook_session_id"`
		Outcome          string    `json:"outcome"`
		OverallRating    *int      `json:"overall_rating,omitempty"`
		TasteRating      *int      `json:"taste_rating,omitempty"`
		TextureRating    *int      `json:"texture_rating,omitempty"`
		AppearanceRating *int      `json:"appearance_rating,omitempty"`
		WouldMakeAgain   bool      `json:"would_make_again"`
		WhatWorked       string    `json:"what_worked,omitempty"`
		WhatToChange     string    `json:"what_to_change,omitempty"`
		NextTimePlan     string    `json:"next_time_plan,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}
)
