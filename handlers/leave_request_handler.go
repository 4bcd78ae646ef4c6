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

const invalidLeaveDates = "Dates must be YYYY-MM-DD, with the end date no earlier than the start date and at most a year later"

type LeaveRequestHandler struct {
	leaves *services.LeaveService
	flash  *Flash
}

func NewLeaveRequestHandler(leaves *services.LeaveService, flash *Flash) *LeaveRequestHandler {
	return &LeaveRequestHandler{
		leaves: leaves,
		flash:  flash,
	}
}

func (h *LeaveRequestHandler) MyLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leaves, err := h.leaves.ListForUser(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return page(c, h.flash, "employee/leave", "Leave", fiber.Map{
		"Leaves": leaves,
	})
}

func (h *LeaveRequestHandler) SubmitLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return h.flash.redirectWithFlash(c, "/employee/leave", "Invalid form submission")
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return h.flash.redirectWithFlash(c, "/employee/leave", util.FirstMessage(errs))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.leaves.Submit(ctx, middleware.CurrentUser(c), payload); err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			return h.flash.redirectWithFlash(c, "/employee/leave", invalidLeaveDates)
		}
		return err
	}
	return c.Redirect("/employee/leave")
}

func (h *LeaveRequestHandler) AdminLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leaves, err := h.leaves.ListAll(ctx)
	if err != nil {
		return err
	}

	return page(c, h.flash, "admin/leaves", "Leave requests", fiber.Map{
		"Leaves": leaves,
	})
}

func (h *LeaveRequestHandler) ShowDecision(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leave, err := h.leaves.Get(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return page(c, h.flash, "admin/leave_action", "Review leave request", fiber.Map{
		"Leave":    leave,
		"Statuses": []string{models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusRejected},
	})
}

func (h *LeaveRequestHandler) Decide(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	formPath := "/admin/leave/" + strconv.FormatInt(id, 10)

	var payload models.LeaveRequestDecisionPayload
	if err := c.BodyParser(&payload); err != nil {
		return h.flash.redirectWithFlash(c, formPath, "Invalid form submission")
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return h.flash.redirectWithFlash(c, formPath, util.FirstMessage(errs))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.leaves.Decide(ctx, id, payload.Status, payload.AdminComment); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return fiber.ErrNotFound
		case errors.Is(err, models.ErrInvalidInput):
			return h.flash.redirectWithFlash(c, formPath, "Unknown leave status")
		}
		return err
	}
	return c.Redirect("/admin/leaves")
}

// GetMyLeaveRequests godoc
// @Summary My leave requests
// @Description Lists the caller's leave requests, newest first
// @Tags Leave Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequest
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /leave-requests/mine [get]
func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leaves, err := h.leaves.ListForUser(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(leaves)
}

// CreateLeaveRequest godoc
// @Summary Submit leave request
// @Description Files a new leave request. It always starts as Pending.
// @Tags Leave Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LeaveRequestCreatePayload true "Leave request"
// @Success 201 {object} models.LeaveRequestSuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body", Details: err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leave, err := h.leaves.Submit(ctx, middleware.CurrentUser(c), payload)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: invalidLeaveDates})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.LeaveRequestSuccessResponse{
		Message:      "Leave request submitted",
		LeaveRequest: leave,
	})
}

// GetAllLeaveRequests godoc
// @Summary All leave requests
// @Description Lists every leave request with its owner, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequestWithUser
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /admin/leave-requests [get]
func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leaves, err := h.leaves.ListAll(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(leaves)
}

// UpdateLeaveRequestStatus godoc
// @Summary Decide leave request
// @Description Stores the given status and admin comment. A request may be decided again.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave request ID"
// @Param decision body models.LeaveRequestDecisionPayload true "Decision"
// @Success 200 {object} models.LeaveRequestSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/leave-requests/{id}/status [put]
func (h *LeaveRequestHandler) UpdateLeaveRequestStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Leave request not found"})
	}

	var payload models.LeaveRequestDecisionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body", Details: err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leave, err := h.leaves.Decide(ctx, id, payload.Status, payload.AdminComment)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Leave request not found"})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(models.LeaveRequestSuccessResponse{
		Message:      "Leave request status updated",
		LeaveRequest: leave,
	})
}
