package handlers

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/internal/api/presenters"
	"Cooking-Companion-Backend/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetDashboard(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

func (h *dashboardHandler) GetDashboard(c *fiber.Ctx) error {
	res, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
