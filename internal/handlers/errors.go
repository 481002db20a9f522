package handlers

import (
	"errors"

	"salon/internal/repositories"
	"salon/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError writes the {"message": ...} body used by every failure response.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// statusFor maps a service error to an HTTP status. fallback is used for store errors.
func statusFor(err error, fallback int) int {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	default:
		return fallback
	}
}
