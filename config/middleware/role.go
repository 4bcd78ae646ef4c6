package middleware

import (
	"github.com/gofiber/fiber/v2"

	"employee-portal/models"
)

// RequireRole admits only callers holding role. Everyone else, signed in or
// not, is sent to the login page.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireAPIRole is the JSON counterpart of RequireRole: 401 without an
// identity, 403 for the wrong role.
func RequireAPIRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "Authentication required"})
		}
		if user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{Error: "Access denied for this role"})
		}
		return c.Next()
	}
}
