package handlers

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/internal/api/presenters"
	"Cooking-Companion-Backend/pkg/cookresult"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookResultHandler interface {
		SaveResultForSession(c *fiber.Ctx) error
		GetResultsForSession(c *fiber.Ctx) error
		GetCookResultDetail(c *fiber.Ctx) error
		DeleteCookResult(c *fiber.Ctx) error
	}

	cookResultHandler struct {
		resultService cookresult.CookResultService
		validator     *validator.Validate
	}
)

func NewCookResultHandler(resultService cookresult.CookResultService, validator *validator.Validate) CookResultHandler {
	return &cookResultHandler{
		resultService: resultService,
		validator:     validator,
	}
}

func (h *cookResultHandler) SaveResultForSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	req := new(domain.SaveCookResultRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveResult, err)
	}

	res, err := h.resultService.SaveResultForSession(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSaveResult, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveResult)
}

func (h *cookResultHandler) GetResultsForSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	results, err := h.resultService.GetResultsForSession(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetResults, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"results": results}, fiber.StatusOK, domain.MessageSuccessGetResults)
}

func (h *cookResultHandler) GetCookResultDetail(c *fiber.Ctx) error {
	resultID := c.Params("id")

	res, err := h.resultService.GetCookResultDetail(c.Context(), resultID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetResultDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetResultDetail)
}

func (h *cookResultHandler) DeleteCookResult(c *fiber.Ctx) error {
	resultID := c.Params("id")

	if err := h.resultService.DeleteCookResult(c.Context(), resultID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteResult, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteResult)
}
