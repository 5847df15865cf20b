package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the bearer token and stores the caller identity in
// Locals for downstream handlers.
func (h *Handler) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return respondError(c, fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return respondError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		userID, role, err := h.userService.ParseToken(parts[1])
		if err != nil {
			h.logger.WithError(err).Warn("Token validation failed")
			return respondError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)

		return c.Next()
	}
}

// currentUserID reads the authenticated user from Locals. AuthRequired always
// sets it on protected routes.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}
