package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"employee-portal/models"
	"employee-portal/repository"
)

// workWeekRule enumerates Monday to Friday.
const workWeekRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

// Accepted leave dates. rrule stops enumerating on very long or very old
// ranges, so requests outside these bounds are rejected.
const (
	minLeaveYear = 1900
	maxLeaveYear = 2199
	maxLeaveSpan = 366 * 24 * time.Hour
)

type LeaveService struct {
	leaves repository.LeaveRequestRepository
	now    Clock
}

func NewLeaveService(leaves repository.LeaveRequestRepository, now Clock) *LeaveService {
	return &LeaveService{
		leaves: leaves,
		now:    now,
	}
}

// Submit files a new Pending request. Both dates must be YYYY-MM-DD, the end
// may not precede the start and the range may cover at most a year.
func (s *LeaveService) Submit(ctx context.Context, user *models.User, payload models.LeaveRequestCreatePayload) (*models.LeaveRequest, error) {
	startDate, err := time.Parse(models.DateLayout, strings.TrimSpace(payload.StartDate))
	if err != nil {
		return nil, models.ErrInvalidDate
	}
	endDate, err := time.Parse(models.DateLayout, strings.TrimSpace(payload.EndDate))
	if err != nil {
		return nil, models.ErrInvalidDate
	}
	if endDate.Before(startDate) || endDate.Sub(startDate) > maxLeaveSpan {
		return nil, models.ErrInvalidDate
	}
	if !leaveYearInRange(startDate) || !leaveYearInRange(endDate) {
		return nil, models.ErrInvalidDate
	}

	days, err := WorkingDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	req := &models.LeaveRequest{
		UserID:    user.ID,
		LeaveType: strings.TrimSpace(payload.LeaveType),
		StartDate: startDate.Format(models.DateLayout),
		EndDate:   endDate.Format(models.DateLayout),
		Days:      days,
		Reason:    strings.TrimSpace(payload.Reason),
		Status:    models.LeaveStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.leaves.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *LeaveService) ListForUser(ctx context.Context, user *models.User) ([]models.LeaveRequest, error) {
	return s.leaves.FindByUserID(ctx, user.ID)
}

func (s *LeaveService) ListAll(ctx context.Context) ([]models.LeaveRequestWithUser, error) {
	return s.leaves.FindAll(ctx)
}

func (s *LeaveService) Get(ctx context.Context, id int64) (*models.LeaveRequest, error) {
	req, err := s.leaves.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, models.ErrNotFound
	}
	return req, nil
}

// Decide stores the admin's status and comment verbatim. A request may be
// decided again at any time.
func (s *LeaveService) Decide(ctx context.Context, id int64, status, comment string) (*models.LeaveRequest, error) {
	if !ValidLeaveStatus(status) {
		return nil, models.ErrInvalidInput
	}

	req, err := s.leaves.UpdateStatus(ctx, id, status, comment, s.now())
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, models.ErrNotFound
	}
	return req, nil
}

func leaveYearInRange(t time.Time) bool {
	return t.Year() >= minLeaveYear && t.Year() <= maxLeaveYear
}

func ValidLeaveStatus(status string) bool {
	switch status {
	case models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusRejected:
		return true
	}
	return false
}

// WorkingDays counts the Monday to Friday dates in [start, end].
func WorkingDays(start, end time.Time) (int, error) {
	rOption, err := rrule.StrToROption(workWeekRule)
	if err != nil {
		return 0, fmt.Errorf("failed to parse work week rule: %w", err)
	}
	rOption.Dtstart = start

	rr, err := rrule.NewRRule(*rOption)
	if err != nil {
		return 0, fmt.Errorf("failed to build work week rule: %w", err)
	}

	return len(rr.Between(start, end, true)), nil
}
