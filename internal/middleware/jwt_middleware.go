package middleware

import (
	"strings"

	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Identity resolves the caller's identity from a Bearer token, if one is
// present and valid, and stores it in the request locals. It never rejects:
// public endpoints run with an empty identity, and role checks happen in the
// service layer so a rejected call provably performs no store access.
func Identity(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Next()
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			// An invalid token is treated as no identity, not a hard
			// failure; gated operations will reject downstream.
			return c.Next()
		}

		if userID, ok := claims["user_id"].(string); ok {
			c.Locals("user_id", userID)
		}
		if username, ok := claims["username"].(string); ok {
			c.Locals("username", username)
		}

		return c.Next()
	}
}
