package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal/config/middleware"
	"employee-portal/models"
	util "employee-portal/pkg/utils"
	"employee-portal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
	flash    *Flash
}

func NewProfileHandler(profiles *services.ProfileService, flash *Flash) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		flash:    flash,
	}
}

func (h *ProfileHandler) ShowOwnProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	profile, err := h.profiles.GetOwnProfile(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return page(c, h.flash, "employee/profile", "My profile", fiber.Map{
		"Profile": profile,
	})
}

// ShowEditOwnProfile renders the self-edit form. A missing profile shows as
// an empty form and is created on submit.
func (h *ProfileHandler) ShowEditOwnProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	profile, err := h.profiles.GetOwnProfile(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	if profile == nil {
		profile = &models.Profile{}
	}

	return page(c, h.flash, "employee/edit_profile", "Edit profile", fiber.Map{
		"Profile": profile,
	})
}

func (h *ProfileHandler) UpdateOwnProfile(c *fiber.Ctx) error {
	var payload models.ProfileSelfUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return h.flash.redirectWithFlash(c, "/employee/profile/edit", "Invalid form submission")
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return h.flash.redirectWithFlash(c, "/employee/profile/edit", util.FirstMessage(errs))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.profiles.UpdateOwnProfile(ctx, middleware.CurrentUser(c), payload); err != nil {
		return err
	}
	return c.Redirect("/employee/profile")
}

func (h *ProfileHandler) ListEmployees(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	employees, err := h.profiles.ListEmployees(ctx)
	if err != nil {
		return err
	}

	return page(c, h.flash, "admin/employees", "Employees", fiber.Map{
		"Employees": employees,
	})
}

func (h *ProfileHandler) ShowEditEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	user, profile, err := h.profiles.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	if profile == nil {
		profile = &models.Profile{UserID: user.ID}
	}

	return page(c, h.flash, "admin/edit_employee", "Edit employee", fiber.Map{
		"Employee": user,
		"Profile":  profile,
	})
}

func (h *ProfileHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	formPath := "/admin/employee/" + strconv.FormatInt(id, 10) + "/edit"

	var payload models.ProfileAdminUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return h.flash.redirectWithFlash(c, formPath, "Invalid form submission")
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return h.flash.redirectWithFlash(c, formPath, util.FirstMessage(errs))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.profiles.AdminUpdateProfile(ctx, id, payload); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return fiber.ErrNotFound
		case errors.Is(err, models.ErrInvalidInput):
			return h.flash.redirectWithFlash(c, formPath, "Salary must be a non-negative number")
		}
		return err
	}
	return c.Redirect("/admin/employees")
}

func (h *ProfileHandler) EmployeePayroll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	profile, err := h.profiles.GetOwnProfile(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return page(c, h.flash, "employee/payroll", "Payroll", fiber.Map{
		"Profile": profile,
	})
}

func (h *ProfileHandler) AdminPayroll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	employees, err := h.profiles.ListEmployees(ctx)
	if err != nil {
		return err
	}

	return page(c, h.flash, "admin/payroll", "Payroll", fiber.Map{
		"Employees": employees,
	})
}
