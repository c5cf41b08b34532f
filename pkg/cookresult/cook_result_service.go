package cookresult

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/pkg/cooksession"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookResultService interface {
		SaveResultForSession(ctx context.Context, sessionID string, req domain.SaveCookResultRequest) (domain.CookResultResponse, error)
		GetCookResultDetail(ctx context.Context, resultID string) (domain.CookResultResponse, error)
		GetResultsForSession(ctx context.Context, sessionID string) ([]domain.CookResultResponse, error)
		DeleteCookResult(ctx context.Context, resultID string) error
	}

	cookResultService struct {
		resultRepository  CookResultRepository
		sessionRepository cooksession.CookSessionRepository
	}
)

func NewCookResultService(resultRepository CookResultRepository, sessionRepository cooksession.CookSessionRepository) CookResultService {
	return &cookResultService{
		resultRepository:  resultRepository,
		sessionRepository: sessionRepository,
	}
}

// SaveResultForSession creates the session's result on first save and updates
// it afterwards, mirroring an edit form that always lands on the same record.
func (s *cookResultService) SaveResultForSession(ctx context.Context, sessionID string, req domain.SaveCookResultRequest) (domain.CookResultResponse, error) {
	sessionUUID, err := uuid.Parse(sessionID)
	if err != nil {
		return domain.CookResultResponse{}, domain.ErrParseUUID
	}

	if _, err := s.sessionRepository.GetCookSessionByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookResultResponse{}, domain.ErrCookSessionNotFound
		}
		return domain.CookResultResponse{}, err
	}

	outcome := req.Outcome
	if outcome == "" {
		outcome = entities.OutcomeExperiment
	}

	result, err := s.resultRepository.GetResultBySessionID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookResultResponse{}, err
		}
		result = &entities.CookResult{
			ID:            uuid.New(),
			CookSessionID: sessionUUID,
		}
		applySaveRequest(result, outcome, req)
		if err := s.resultRepository.CreateCookResult(ctx, result); err != nil {
			return domain.CookResultResponse{}, err
		}
		return toCookResultResponse(result), nil
	}

	applySaveRequest(result, outcome, req)
	result.CookSession = nil
	if err := s.resultRepository.UpdateCookResult(ctx, result); err != nil {
		return domain.CookResultResponse{}, err
	}
	return toCookResultResponse(result), nil
}

func (s *cookResultService) GetCookResultDetail(ctx context.Context, resultID string) (domain.CookResultResponse, error) {
	result, err := s.resultRepository.GetCookResultByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookResultResponse{}, domain.ErrCookResultNotFound
		}
		return domain.CookResultResponse{}, err
	}
	return toCookResultResponse(result), nil
}

func (s *cookResultService) GetResultsForSession(ctx context.Context, sessionID string) ([]domain.CookResultResponse, error) {
	if _, err := s.sessionRepository.GetCookSessionByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCookSessionNotFound
		}
		return nil, err
	}

	results, err := s.resultRepository.GetResultsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CookResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toCookResultResponse(result))
	}
	return responses, nil
}

func (s *cookResultService) DeleteCookResult(ctx context.Context, resultID string) error {
	if _, err := s.resultRepository.GetCookResultByID(ctx, resultID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookResultNotFound
		}
		return err
	}
	return s.resultRepository.DeleteCookResultCascade(ctx, resultID)
}

func applySaveRequest(result *entities.CookResult, outcome string, req domain.SaveCookResultRequest) {
	result.Outcome = outcome
	result.OverallRating = req.OverallRating
	result.TasteRating = req.TasteRating
	result.TextureRating = req.TextureRating
	result.AppearanceRating = req.AppearanceRating
	result.WouldMakeAgain = req.WouldMakeAgain
	result.WhatWorked = req.WhatWorked
	result.WhatToChange = req.WhatToChange
	result.NextTimePlan = req.NextTimePlan
}

func toCookResultResponse(result *entities.CookResult) domain.CookResultResponse {
	return domain.CookResultResponse{
		ID:               result.ID.String(),
		CookSessionID:    result.CookSessionID.String(),
		Outcome:          result.Outcome,
		OverallRating:    result.OverallRating,
		TasteRating:      result.TasteRating,
		TextureRating:    result.TextureRating,
		AppearanceRating: result.AppearanceRating,
		WouldMakeAgain:   result.WouldMakeAgain,
		WhatWorked:       result.WhatWorked,
		WhatToChange:     result.WhatToChange,
		NextTimePlan:     result.NextTimePlan,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}
}
