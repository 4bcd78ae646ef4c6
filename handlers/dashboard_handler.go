package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal/config/middleware"
	"employee-portal/services"
)

type DashboardHandler struct {
	dashboard  *services.DashboardService
	attendance *services.AttendanceService
	flash      *Flash
}

func NewDashboardHandler(dashboard *services.DashboardService, attendance *services.AttendanceService, flash *Flash) *DashboardHandler {
	return &DashboardHandler{
		dashboard:  dashboard,
		attendance: attendance,
		flash:      flash,
	}
}

func (h *DashboardHandler) EmployeeDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	today, err := h.attendance.Today(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	return page(c, h.flash, "employee/dashboard", "Dashboard", fiber.Map{
		"TodayRecord": today,
	})
}

func (h *DashboardHandler) AdminDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	stats, err := h.dashboard.AdminStats(ctx)
	if err != nil {
		return err
	}

	return page(c, h.flash, "admin/dashboard", "Admin dashboard", fiber.Map{
		"Stats": stats,
	})
}
