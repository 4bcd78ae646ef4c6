package services

import (
	"context"
	"strconv"
	"strings"

	"employee-portal/models"
	"employee-portal/repository"
)

type ProfileService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	now      Clock
}

func NewProfileService(users repository.UserRepository, profiles repository.ProfileRepository, now Clock) *ProfileService {
	return &ProfileService{
		users:    users,
		profiles: profiles,
		now:      now,
	}
}

func (s *ProfileService) GetOwnProfile(ctx context.Context, user *models.User) (*models.Profile, error) {
	return s.profiles.FindByUserID(ctx, user.ID)
}

// UpdateOwnProfile applies an employee's self edit. Job title and salary are
// left as they are.
func (s *ProfileService) UpdateOwnProfile(ctx context.Context, user *models.User, payload models.ProfileSelfUpdatePayload) (*models.Profile, error) {
	return s.profiles.Upsert(ctx, user.ID, models.ProfileFields{
		FullName: strings.TrimSpace(payload.FullName),
		Phone:    strings.TrimSpace(payload.Phone),
		Address:  strings.TrimSpace(payload.Address),
	}, s.now())
}

// GetEmployee loads the account and optional profile for the admin edit form.
func (s *ProfileService) GetEmployee(ctx context.Context, userID int64) (*models.User, *models.Profile, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, models.ErrNotFound
	}
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *ProfileService) AdminUpdateProfile(ctx context.Context, userID int64, payload models.ProfileAdminUpdatePayload) (*models.Profile, error) {
	salary, err := ParseSalary(payload.Salary)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrNotFound
	}

	jobTitle := strings.TrimSpace(payload.JobTitle)
	return s.profiles.Upsert(ctx, userID, models.ProfileFields{
		FullName: strings.TrimSpace(payload.FullName),
		Phone:    strings.TrimSpace(payload.Phone),
		Address:  strings.TrimSpace(payload.Address),
		JobTitle: &jobTitle,
		Salary:   &salary,
	}, s.now())
}

func (s *ProfileService) ListEmployees(ctx context.Context) ([]models.EmployeeWithProfile, error) {
	return s.users.FindEmployeesWithProfiles(ctx)
}

// ParseSalary accepts a non-negative decimal amount.
func ParseSalary(raw string) (float64, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || salary < 0 {
		return 0, models.ErrInvalidInput
	}
	return salary, nil
}
