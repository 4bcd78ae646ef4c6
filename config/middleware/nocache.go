package middleware

import "github.com/gofiber/fiber/v2"

// NoStore stops browsers and proxies from caching any response, so pages
// behind the login are not replayed from history after logout.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, private")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}
