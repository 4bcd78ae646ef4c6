package main

import (
	"context"
	"log"
	_ "time/tzdata"

	"employee-portal/config"
	"employee-portal/pkg/paseto"
	"employee-portal/repository"
	"employee-portal/router"
	"employee-portal/seeder"
	"employee-portal/services"
)

// @title Employee Portal API
// @version 1.0
// @description JSON API of the employee portal: login, attendance check-in/check-out and the leave workflow.
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Attendance
// @tag.description Daily check-in and check-out
//
// @tag.name Leave Requests
// @tag.description Leave submission
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := config.MongoConnect(context.Background(), cfg.MongoString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.DisconnectDB(client)

	db := client.Database(cfg.MongoDB)
	if err := config.InitDatabase(context.Background(), db); err != nil {
		log.Fatalf("Failed to initialise database: %v", err)
	}

	repos := repository.NewRepositories(db)
	clock := services.SystemClock(cfg.Location)

	tokens, err := paseto.NewPasetoMaker(cfg.PasetoSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to initialise token maker: %v", err)
	}
	authService := services.NewAuthService(repos.Users, tokens, clock)

	if _, err := seeder.SeedAdmin(authService, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminEmployeeCode); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	app, err := router.New(cfg, repos, authService, clock)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: %s/docs/index.html", cfg.BaseURL)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins(cfg))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
