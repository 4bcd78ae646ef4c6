package handlers

import (
	"context"
	"encoding/base64"
	"html/template"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"

	"employee-portal/config/middleware"
	"employee-portal/models"
	"employee-portal/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
	flash      *Flash
	checkInURL string
}

// NewAttendanceHandler wires the attendance pages. checkInURL is the absolute
// URL encoded in the printable check-in QR code.
func NewAttendanceHandler(attendance *services.AttendanceService, flash *Flash, checkInURL string) *AttendanceHandler {
	return &AttendanceHandler{
		attendance: attendance,
		flash:      flash,
		checkInURL: checkInURL,
	}
}

func (h *AttendanceHandler) MyAttendance(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	records, err := h.attendance.ListForUser(ctx, user)
	if err != nil {
		return err
	}
	today, err := h.attendance.Today(ctx, user)
	if err != nil {
		return err
	}

	return page(c, h.flash, "employee/attendance", "Attendance", fiber.Map{
		"Records":     records,
		"TodayRecord": today,
		"TodayState":  today.State().String(),
	})
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.attendance.CheckIn(ctx, middleware.CurrentUser(c)); err != nil {
		return err
	}
	return c.Redirect("/employee/attendance")
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.attendance.CheckOut(ctx, middleware.CurrentUser(c)); err != nil {
		return err
	}
	return c.Redirect("/employee/attendance")
}

func (h *AttendanceHandler) AdminAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	records, err := h.attendance.ListAll(ctx)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Records":    records,
		"CheckInURL": h.checkInURL,
	}
	if png, err := qrcode.Encode(h.checkInURL, qrcode.Medium, 256); err != nil {
		log.Printf("Error generating check-in QR code: %v", err)
	} else {
		data["QRCode"] = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	return page(c, h.flash, "admin/attendance", "Attendance", data)
}

// CheckInQRCode serves the check-in QR code as a downloadable PNG.
func (h *AttendanceHandler) CheckInQRCode(c *fiber.Ctx) error {
	png, err := qrcode.Encode(h.checkInURL, qrcode.Medium, 512)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="checkin-qr.png"`)
	return c.Send(png)
}

// APICheckIn godoc
// @Summary Check in
// @Description Records today's check-in for the caller. Repeating it keeps the first time.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AttendanceSuccessResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) APICheckIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	record, err := h.attendance.CheckIn(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(models.AttendanceSuccessResponse{
		Message:    "Checked in",
		Attendance: record,
	})
}

// APICheckOut godoc
// @Summary Check out
// @Description Records today's check-out. Without a check-in, or after one check-out, nothing changes.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AttendanceSuccessResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) APICheckOut(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	record, err := h.attendance.CheckOut(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	message := "Checked out"
	if record.State() != models.CheckedOut {
		message = "No check-in recorded today"
	}
	return c.Status(fiber.StatusOK).JSON(models.AttendanceSuccessResponse{
		Message:    message,
		Attendance: record,
	})
}

// GetMyAttendanceHistory godoc
// @Summary My attendance history
// @Description Lists the caller's attendance records, newest date first
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Attendance
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	records, err := h.attendance.ListForUser(ctx, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// GetAllAttendance godoc
// @Summary All attendance
// @Description Lists every attendance record with its owner, newest date first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithUser
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /admin/attendance [get]
func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	records, err := h.attendance.ListAll(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(records)
}
