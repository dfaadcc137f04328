package handlers

import (
	"errors"

	"lumeno/internal/repositories"
	"lumeno/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain errors to HTTP status codes. Anything outside
// the taxonomy is a data-access failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// currentUserID resolves the authenticated user from the request context.
// Empty when the route is reachable without the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
