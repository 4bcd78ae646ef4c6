package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/securecookie"
)

const flashCookie = "portal_flash"

// Flash carries one-line messages across a redirect in a signed cookie.
type Flash struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func NewFlash(hashKey []byte, secure bool) *Flash {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int((10 * time.Minute).Seconds()))
	return &Flash{codec: codec, secure: secure}
}

// Set queues msg for the next page rendered for this browser.
func (f *Flash) Set(c *fiber.Ctx, msg string) {
	encoded, err := f.codec.Encode(flashCookie, msg)
	if err != nil {
		log.Printf("Error encoding flash message: %v", err)
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    encoded,
		Path:     "/",
		HTTPOnly: true,
		Secure:   f.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func (f *Flash) Pop(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   f.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	var msg string
	if err := f.codec.Decode(flashCookie, raw, &msg); err != nil {
		return ""
	}
	return msg
}

// redirectWithFlash is the standard response to a rejected form.
func (f *Flash) redirectWithFlash(c *fiber.Ctx, location, msg string) error {
	f.Set(c, msg)
	return c.Redirect(location)
}
