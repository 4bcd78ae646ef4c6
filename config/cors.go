package config

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var allowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:4173",
	"http://127.0.0.1:5173",
}

// GetAllowedOrigins lists the origins accepted by the JSON API, the
// configured base URL included.
func GetAllowedOrigins(cfg *AppConfig) []string {
	origins := append([]string{}, allowedOrigins...)
	if cfg.BaseURL != "" {
		origins = append(origins, cfg.BaseURL)
	}
	return origins
}

func CORS(cfg *AppConfig) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(GetAllowedOrigins(cfg), ","),
		AllowMethods:     "GET, POST, PUT, OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length, Content-Type",
	})
}
