package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-portal/config/middleware"
	"employee-portal/models"
	util "employee-portal/pkg/utils"
	"employee-portal/services"
)

type AuthHandler struct {
	auth         *services.AuthService
	flash        *Flash
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAuthHandler(auth *services.AuthService, flash *Flash, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		flash:        flash,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) ShowSignup(c *fiber.Ctx) error {
	return page(c, h.flash, "auth/signup", "Sign up", nil)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var payload models.UserSignupPayload
	if err := c.BodyParser(&payload); err != nil {
		return h.flash.redirectWithFlash(c, "/signup", "Invalid form submission")
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return h.flash.redirectWithFlash(c, "/signup", util.FirstMessage(errs))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if _, err := h.auth.Register(ctx, payload); err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail):
			return h.flash.redirectWithFlash(c, "/signup", "Email already exists")
		case errors.Is(err, models.ErrDuplicateEmployeeCode):
			return h.flash.redirectWithFlash(c, "/signup", "Employee ID already exists")
		case errors.Is(err, models.ErrInvalidInput):
			return h.flash.redirectWithFlash(c, "/signup", "Password must be at most 72 bytes")
		}
		return err
	}

	return h.flash.redirectWithFlash(c, "/login", "Account created successfully")
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return page(c, h.flash, "auth/login", "Log in", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return h.flash.redirectWithFlash(c, "/login", "Invalid email or password")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	user, err := h.auth.Authenticate(ctx, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return h.flash.redirectWithFlash(c, "/login", "Invalid email or password")
		}
		return err
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token, h.sessionTTL, h.cookieSecure)

	return c.Redirect(user.DashboardPath())
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c, h.cookieSecure)
	return c.Redirect("/login")
}

// APILogin godoc
// @Summary Login
// @Description Authenticates with email and password and returns a PASETO bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) APILogin(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body", Details: err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	user, err := h.auth.Authenticate(ctx, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "Invalid email or password"})
		}
		return err
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(models.LoginSuccessResponse{
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}

// Me godoc
// @Summary Current user
// @Description Returns the account the bearer token belongs to
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}
