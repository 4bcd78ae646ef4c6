package seeder

import (
	"context"
	"errors"
	"log"
	"time"

	"employee-portal/models"
	"employee-portal/services"
)

// SeedAdmin registers the bootstrap administrator when credentials are
// configured and the account does not exist yet. It reports whether an
// account was created.
func SeedAdmin(auth *services.AuthService, email, password, employeeCode string) (bool, error) {
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, admin seeding skipped.")
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := auth.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		log.Println("Admin user already exists, seeding skipped.")
		return false, nil
	}

	_, err = auth.Register(ctx, models.UserSignupPayload{
		EmployeeCode: employeeCode,
		Email:        email,
		Password:     password,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return false, nil
		}
		return false, err
	}

	log.Printf("Admin user %s created.", email)
	return true, nil
}
