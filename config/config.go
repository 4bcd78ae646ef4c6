package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	util "employee-portal/pkg/utils"
)

type AppConfig struct {
	Port              string
	MongoString       string
	MongoDB           string
	PasetoSecret      string
	SessionTTL        time.Duration
	Location          *time.Location
	BaseURL           string
	CookieSecure      bool
	AdminEmail        string
	AdminPassword     string
	AdminEmployeeCode string
}

// LoadConfig loads configuration from .env file and the process environment.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded (might not exist in production): %v", err)
	}

	cfg := &AppConfig{
		Port:              getEnv("PORT", "3000"),
		MongoString:       getEnv("MONGOSTRING", ""),
		MongoDB:           getEnv("MONGO_DB", "employee-portal-db"),
		AdminEmail:        strings.TrimSpace(getEnv("ADMIN_EMAIL", "")),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminEmployeeCode: getEnv("ADMIN_EMPLOYEE_CODE", "ADM-001"),
	}

	if strings.TrimSpace(cfg.MongoString) == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	cfg.BaseURL = strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+cfg.Port), "/")

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL value %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	cfg.Location, err = loadLocation(getEnv("APP_TIMEZONE", "Local"))
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE value: %w", err)
	}

	cfg.PasetoSecret, err = loadPasetoSecret(getEnv("PASETO_SECRET", ""))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// loadPasetoSecret validates the configured secret. When none is configured a
// random one is generated, which invalidates sessions on every restart.
func loadPasetoSecret(secretBase64 string) (string, error) {
	if secretBase64 == "" {
		log.Println("Warning: PASETO_SECRET not set, generating a random key; sessions will not survive a restart")
		return util.GenerateBase64Key(32)
	}

	secretBytes, err := util.DecodeBase64Key(secretBase64)
	if err != nil {
		return "", fmt.Errorf("PASETO_SECRET is not a valid Base64 string: %w", err)
	}

	if len(secretBytes) != 32 {
		return "", fmt.Errorf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	return secretBase64, nil
}

// Helper function to get environment variable or fallback to default.
// An empty value counts as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
