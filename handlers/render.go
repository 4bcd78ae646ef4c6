package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"employee-portal/config/middleware"
)

// page renders view inside the main layout with the values every page uses.
func page(c *fiber.Ctx, flash *Flash, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["CurrentUser"] = middleware.CurrentUser(c)
	data["Flash"] = flash.Pop(c)
	return c.Render(view, data)
}

// paramID parses a positive integer path id. Anything else is a 404.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}
