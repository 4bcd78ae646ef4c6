package middleware

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal/models"
)

// SessionCookie carries the PASETO session token for the HTML surface.
const SessionCookie = "portal_session"

const userKey = "user"

// IdentityResolver maps a session token to the account it was issued for.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// CurrentUser returns the caller resolved for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

// LoadIdentity resolves the session cookie, if any, and stores the caller in
// the request locals. A stale cookie is cleared. When the store fails the
// cookie is kept and the request proceeds anonymously.
func LoadIdentity(resolver IdentityResolver, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		user, err := resolver.ResolveToken(ctx, token)
		if err != nil {
			if errors.Is(err, models.ErrUnauthenticated) {
				ClearSessionCookie(c, secure)
			} else {
				log.Printf("Error resolving session: %v", err)
			}
			return c.Next()
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// RedirectIfAuthenticated sends signed-in callers to their dashboard.
func RedirectIfAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := CurrentUser(c); user != nil {
			return c.Redirect(user.DashboardPath())
		}
		return c.Next()
	}
}

// RequireLogin redirects anonymous callers to the login page.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// SetSessionCookie starts a browser session for token.
func SetSessionCookie(c *fiber.Ctx, token string, ttl time.Duration, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie ends the browser session.
func ClearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// AuthMiddleware guards the JSON API with a Bearer token.
func AuthMiddleware(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "Authorization header is required"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "Authorization header format must be Bearer <token>"})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		user, err := resolver.ResolveToken(ctx, parts[1])
		if err != nil {
			if errors.Is(err, models.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "Invalid or expired token"})
			}
			return err
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}
