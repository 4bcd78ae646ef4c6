package router

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/gorilla/securecookie"

	"employee-portal/config"
	"employee-portal/config/middleware"
	_ "employee-portal/docs"
	"employee-portal/handlers"
	"employee-portal/models"
	"employee-portal/repository"
	"employee-portal/services"
	"employee-portal/views"
)

// New assembles the application: template engine, middleware stack and every
// route, backed by repos, authenticating through authService and reading time
// from now.
func New(cfg *config.AppConfig, repos *repository.Repositories, authService *services.AuthService, now services.Clock) (*fiber.App, error) {
	flashKey := securecookie.GenerateRandomKey(32)
	if flashKey == nil {
		return nil, errors.New("failed to generate flash cookie key")
	}

	profileService := services.NewProfileService(repos.Users, repos.Profiles, now)
	attendanceService := services.NewAttendanceService(repos.Attendance, now)
	leaveService := services.NewLeaveService(repos.LeaveRequests, now)
	dashboardService := services.NewDashboardService(repos, now)

	flash := handlers.NewFlash(flashKey, cfg.CookieSecure)
	authHandler := handlers.NewAuthHandler(authService, flash, cfg.SessionTTL, cfg.CookieSecure)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, attendanceService, flash)
	profileHandler := handlers.NewProfileHandler(profileService, flash)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, flash, cfg.BaseURL+"/employee/checkin")
	leaveHandler := handlers.NewLeaveRequestHandler(leaveService, flash)

	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(cfg.Location),
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(middleware.NoStore())
	app.Use("/static", filesystem.New(filesystem.Config{Root: views.Static()}))
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1", config.CORS(cfg))
	setupAPIRoutes(api, authService, authHandler, attendanceHandler, leaveHandler)

	app.Use(middleware.LoadIdentity(authService, cfg.CookieSecure))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})

	guest := middleware.RedirectIfAuthenticated()
	app.Get("/signup", guest, authHandler.ShowSignup)
	app.Post("/signup", guest, authHandler.Signup)
	app.Get("/login", guest, authHandler.ShowLogin)
	app.Post("/login", guest, authHandler.Login)
	app.Get("/logout", middleware.RequireLogin(), authHandler.Logout)

	employee := app.Group("/employee", middleware.RequireRole(models.RoleEmployee))
	employee.Get("/dashboard", dashboardHandler.EmployeeDashboard)
	employee.Get("/profile", profileHandler.ShowOwnProfile)
	employee.Get("/profile/edit", profileHandler.ShowEditOwnProfile)
	employee.Post("/profile/edit", profileHandler.UpdateOwnProfile)
	employee.Get("/attendance", attendanceHandler.MyAttendance)
	employee.Get("/checkin", attendanceHandler.CheckIn)
	employee.Get("/checkout", attendanceHandler.CheckOut)
	employee.Get("/leave", leaveHandler.MyLeaveRequests)
	employee.Post("/leave", leaveHandler.SubmitLeaveRequest)
	employee.Get("/payroll", profileHandler.EmployeePayroll)

	admin := app.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/dashboard", dashboardHandler.AdminDashboard)
	admin.Get("/employees", profileHandler.ListEmployees)
	admin.Get("/employee/:id/edit", profileHandler.ShowEditEmployee)
	admin.Post("/employee/:id/edit", profileHandler.UpdateEmployee)
	admin.Get("/attendance", attendanceHandler.AdminAttendance)
	admin.Get("/attendance/qr", attendanceHandler.CheckInQRCode)
	admin.Get("/leaves", leaveHandler.AdminLeaveRequests)
	admin.Get("/leave/:id", leaveHandler.ShowDecision)
	admin.Post("/leave/:id", leaveHandler.Decide)
	admin.Get("/payroll", profileHandler.AdminPayroll)

	log.Printf("Registered %d routes", len(app.GetRoutes(true)))
	return app, nil
}

func setupAPIRoutes(api fiber.Router, resolver middleware.IdentityResolver, authHandler *handlers.AuthHandler, attendanceHandler *handlers.AttendanceHandler, leaveHandler *handlers.LeaveRequestHandler) {
	authenticated := middleware.AuthMiddleware(resolver)

	api.Post("/auth/login", authHandler.APILogin)
	api.Get("/me", authenticated, authHandler.Me)

	attendanceGroup := api.Group("/attendance", authenticated, middleware.RequireAPIRole(models.RoleEmployee))
	attendanceGroup.Post("/check-in", attendanceHandler.APICheckIn)
	attendanceGroup.Post("/check-out", attendanceHandler.APICheckOut)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)

	leaveGroup := api.Group("/leave-requests", authenticated, middleware.RequireAPIRole(models.RoleEmployee))
	leaveGroup.Get("/mine", leaveHandler.GetMyLeaveRequests)
	leaveGroup.Post("/", leaveHandler.CreateLeaveRequest)

	adminGroup := api.Group("/admin", authenticated, middleware.RequireAPIRole(models.RoleAdmin))
	adminGroup.Get("/attendance", attendanceHandler.GetAllAttendance)
	adminGroup.Get("/leave-requests", leaveHandler.GetAllLeaveRequests)
	adminGroup.Put("/leave-requests/:id/status", leaveHandler.UpdateLeaveRequestStatus)
}

// errorHandler answers JSON under /api and renders the error page elsewhere.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else if errors.Is(err, models.ErrNotFound) {
		code = fiber.StatusNotFound
	}

	message := "Something went wrong. Please try again later."
	if code == fiber.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	} else if fe != nil {
		message = fe.Message
	} else {
		message = "Not Found"
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(models.ErrorResponse{Error: message})
	}

	c.Status(code)
	if renderErr := c.Render("error", fiber.Map{
		"Title":       fmt.Sprintf("%d", code),
		"Code":        code,
		"Message":     message,
		"CurrentUser": middleware.CurrentUser(c),
	}); renderErr != nil {
		log.Printf("Error rendering error page: %v", renderErr)
		return c.Status(code).SendString(message)
	}
	return nil
}
