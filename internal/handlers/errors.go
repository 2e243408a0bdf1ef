package handlers

import (
	"errors"
	"strings"

	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// callerID returns the identity resolved by the Identity middleware, or the
// empty string for anonymous callers.
func callerID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("user_id").(string); ok {
		return userID
	}
	return ""
}

// serviceError maps a service-layer failure to its HTTP response. All
// service errors are terminal; none are retried here.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrAdminRequired), errors.Is(err, services.ErrAccessDenied):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrProductNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidQuantity):
		status = fiber.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}
