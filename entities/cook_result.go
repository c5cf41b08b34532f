package entities

import (
	"github.com/google/uuid"
)

const (
	OutcomeNailedIt   = "nailed_it"
	OutcomeGood       = "good"
	OutcomeOkay       = "okay"
	OutcomeFail       = "fail"
	OutcomeExperiment = "experiment"
)

type CookResult struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CookSessionID    uuid.UUID `gorm:"type:uuid;index" json:"cook_session_id"`
	Outcome          string    `json:"outcome"` // nailed_it, good, okay, fail, experiment
	OverallRating    *int      `json:"overall_rating,omitempty"`
	TasteRating      *int      `json:"taste_rating,omitempty"`
	TextureRating    *int      `json:"texture_rating,omitempty"`
	AppearanceRating *int      `json:"appearance_rating,omitempty"`
	WouldMakeAgain   bool      `json:"would_make_again"`
	WhatWorked       string    `gorm:"type:text" json:"what_worked,omitempty"`
	WhatToChange     string    `gorm:"type:text" json:"what_to_change,omitempty"`
	NextTimePlan     string    `gorm:"type:text" json:"next_time_plan,omitempty"`

	CookSession *CookSession `gorm:"foreignKey:CookSessionID" json:"cook_session,omitempty"`
	Timestamp
}
