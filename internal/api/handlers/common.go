package handlers

import (
	"Cooking-Companion-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusForError keeps unknown-id failures on 404 and everything else the
// services surface (validation, integrity) on 400.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrDishNotFound),
		errors.Is(err, domain.ErrCookSessionNotFound),
		errors.Is(err, domain.ErrCookResultNotFound),
		errors.Is(err, domain.ErrAttachmentNotFound),
		errors.Is(err, domain.ErrParentNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}
