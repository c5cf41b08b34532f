package handlers

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/internal/api/presenters"
	"Cooking-Companion-Backend/pkg/cooksession"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookSessionHandler interface {
		CreateCookSession(c *fiber.Ctx) error
		GetCookSessions(c *fiber.Ctx) error
		GetCookSessionDetail(c *fiber.Ctx) error
		UpdateCookSession(c *fiber.Ctx) error
		DeleteCookSession(c *fiber.Ctx) error
	}

	cookSessionHandler struct {
		sessionService cooksession.CookSessionService
		validator      *validator.Validate
	}
)

func NewCookSessionHandler(sessionService cooksession.CookSessionService, validator *validator.Validate) CookSessionHandler {
	return &cookSessionHandler{
		sessionService: sessionService,
		validator:      validator,
	}
}

func (h *cookSessionHandler) CreateCookSession(c *fiber.Ctx) error {
	req := new(domain.CreateCookSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSession, err)
	}

	res, err := h.sessionService.CreateCookSession(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSession)
}

func (h *cookSessionHandler) GetCookSessions(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "25"))
	if err != nil || limit < 1 {
		limit = 25
	}

	req := domain.ListCookSessionsRequest{
		DishID:   c.Query("dish_id", ""),
		When:     c.Query("when", ""),
		MealType: c.Query("meal_type", ""),
		Method:   c.Query("method", ""),
		Page:     page,
		Limit:    limit,
	}

	sessions, count, err := h.sessionService.GetCookSessions(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetSessions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"sessions":   sessions,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetSessions)
}

func (h *cookSessionHandler) GetCookSessionDetail(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	res, err := h.sessionService.GetCookSessionDetail(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetSessionDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSessionDetail)
}

func (h *cookSessionHandler) UpdateCookSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	req := new(domain.UpdateCookSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSession, err)
	}

	res, err := h.sessionService.UpdateCookSession(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSession)
}

func (h *cookSessionHandler) DeleteCookSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	if err := h.sessionService.DeleteCookSession(c.Context(), sessionID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSession)
}
