package services

import (
	"context"
	"errors"

	"employee-portal/models"
	"employee-portal/repository"
)

type AttendanceService struct {
	attendance repository.AttendanceRepository
	now        Clock
}

func NewAttendanceService(attendance repository.AttendanceRepository, now Clock) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		now:        now,
	}
}

// TodayDate is the calendar key of the current day.
func (s *AttendanceService) TodayDate() string {
	return s.now().Format(models.DateLayout)
}

// CheckIn opens today's record for user. Repeated calls leave the first
// check-in time untouched.
func (s *AttendanceService) CheckIn(ctx context.Context, user *models.User) (*models.Attendance, error) {
	now := s.now()
	date := now.Format(models.DateLayout)

	record, err := s.attendance.FindAttendanceByUserAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}

	if record == nil {
		record = &models.Attendance{
			UserID:    user.ID,
			Date:      date,
			CheckIn:   &now,
			Status:    models.AttendanceStatusPresent,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = s.attendance.CreateAttendance(ctx, record)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, repository.ErrAttendanceExists) {
			return nil, err
		}
		// lost a race with a concurrent check-in; fall through to the stored row
		record, err = s.attendance.FindAttendanceByUserAndDate(ctx, user.ID, date)
		if err != nil {
			return nil, err
		}
	}

	if record.CheckIn == nil {
		if _, err := s.attendance.SetCheckIn(ctx, record.ID, now); err != nil {
			return nil, err
		}
	}
	return s.attendance.FindAttendanceByUserAndDate(ctx, user.ID, date)
}

// CheckOut closes today's record. Without a check-in, or when already
// checked out, nothing changes and the current record (possibly nil) is
// returned.
func (s *AttendanceService) CheckOut(ctx context.Context, user *models.User) (*models.Attendance, error) {
	now := s.now()
	date := now.Format(models.DateLayout)

	record, err := s.attendance.FindAttendanceByUserAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	if record.State() != models.CheckedIn {
		return record, nil
	}

	if _, err := s.attendance.SetCheckOut(ctx, record.ID, now); err != nil {
		return nil, err
	}
	return s.attendance.FindAttendanceByUserAndDate(ctx, user.ID, date)
}

func (s *AttendanceService) Today(ctx context.Context, user *models.User) (*models.Attendance, error) {
	return s.attendance.FindAttendanceByUserAndDate(ctx, user.ID, s.TodayDate())
}

func (s *AttendanceService) ListForUser(ctx context.Context, user *models.User) ([]models.Attendance, error) {
	return s.attendance.FindAttendanceByUserID(ctx, user.ID)
}

func (s *AttendanceService) ListAll(ctx context.Context) ([]models.AttendanceWithUser, error) {
	return s.attendance.GetAllAttendancesWithUserDetails(ctx)
}
