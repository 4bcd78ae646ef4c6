package services

import (
	"context"

	"employee-portal/models"
	"employee-portal/repository"
)

type DashboardService struct {
	users      repository.UserRepository
	attendance repository.AttendanceRepository
	leaves     repository.LeaveRequestRepository
	now        Clock
}

func NewDashboardService(repos *repository.Repositories, now Clock) *DashboardService {
	return &DashboardService{
		users:      repos.Users,
		attendance: repos.Attendance,
		leaves:     repos.LeaveRequests,
		now:        now,
	}
}

func (s *DashboardService) AdminStats(ctx context.Context) (*models.DashboardStats, error) {
	employees, err := s.users.CountByRole(ctx, models.RoleEmployee)
	if err != nil {
		return nil, err
	}
	pending, err := s.leaves.CountPendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	checkedIn, err := s.attendance.CountByDate(ctx, s.now().Format(models.DateLayout))
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalEmployees:       employees,
		PendingLeaveRequests: pending,
		CheckedInToday:       checkedIn,
	}, nil
}
