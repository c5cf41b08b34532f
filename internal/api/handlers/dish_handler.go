package handlers

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/internal/api/presenters"
	"Cooking-Companion-Backend/pkg/dish"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		CreateDish(c *fiber.Ctx) error
		GetDishes(c *fiber.Ctx) error
		GetDishDetail(c *fiber.Ctx) error
		UpdateDish(c *fiber.Ctx) error
		DeleteDish(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) CreateDish(c *fiber.Ctx) error {
	req := new(domain.CreateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	res, err := h.dishService.CreateDish(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *dishHandler) GetDishes(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	req := domain.ListDishesRequest{
		Query:    c.Query("q", ""),
		RecipeID: c.Query("recipe_id", ""),
		Page:     page,
		Limit:    limit,
	}

	dishes, count, err := h.dishService.GetDishes(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"dishes":     dishes,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *dishHandler) GetDishDetail(c *fiber.Ctx) error {
	dishID := c.Params("id")

	res, err := h.dishService.GetDishDetail(c.Context(), dishID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetDishDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishDetail)
}

func (h *dishHandler) UpdateDish(c *fiber.Ctx) error {
	dishID := c.Params("id")
	req := new(domain.UpdateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDish, err)
	}

	res, err := h.dishService.UpdateDish(c.Context(), dishID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDish)
}

func (h *dishHandler) DeleteDish(c *fiber.Ctx) error {
	dishID := c.Params("id")

	if err := h.dishService.DeleteDish(c.Context(), dishID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDish)
}
