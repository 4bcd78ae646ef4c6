package services

import (
	"context"
	"fmt"
	"strings"

	"employee-portal/models"
	"employee-portal/pkg/paseto"
	"employee-portal/pkg/password"
	"employee-portal/repository"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *paseto.PasetoMaker
	now    Clock
}

func NewAuthService(users repository.UserRepository, tokens *paseto.PasetoMaker, now Clock) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		now:    now,
	}
}

// Register creates an active account. The email pre-check gives the common
// case a clean error; the unique indexes catch concurrent signups.
func (s *AuthService) Register(ctx context.Context, payload models.UserSignupPayload) (*models.User, error) {
	if len(payload.Password) > password.MaxLength {
		return nil, fmt.Errorf("%w: password longer than %d bytes", models.ErrInvalidInput, password.MaxLength)
	}
	email := strings.TrimSpace(payload.Email)

	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateEmail
	}

	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		EmployeeCode: strings.TrimSpace(payload.EmployeeCode),
		Email:        email,
		Password:     hashed,
		Role:         payload.Role,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindUserByEmail(ctx, strings.TrimSpace(email))
}

func (s *AuthService) Verify(user *models.User, rawPassword string) bool {
	return user != nil && password.CheckPasswordHash(rawPassword, user.Password)
}

// Authenticate returns the account for a correct email and password pair.
// Unknown emails, wrong passwords and inactive accounts all fail the same way.
func (s *AuthService) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !s.Verify(user, rawPassword) {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	return s.tokens.GenerateToken(user)
}

// ResolveToken maps a session token back to a live, active account.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, models.ErrUnauthenticated
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}

	user, err := s.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.ErrUnauthenticated
	}
	return user, nil
}
