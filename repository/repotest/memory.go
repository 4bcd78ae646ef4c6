// Package repotest provides in-memory repositories with the same contracts
// as the Mongo implementations, for service and handler tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"employee-portal/models"
	"employee-portal/repository"
)

// Store holds every collection behind one lock.
type Store struct {
	mu          sync.Mutex
	seq         map[string]int64
	users       []models.User
	profiles    []models.Profile
	attendances []models.Attendance
	leaves      []models.LeaveRequest
}

func NewStore() *Store {
	return &Store{seq: map[string]int64{}}
}

func (s *Store) next(name string) int64 {
	s.seq[name]++
	return s.seq[name]
}

func (s *Store) Users() repository.UserRepository                 { return userRepo{s} }
func (s *Store) Profiles() repository.ProfileRepository           { return profileRepo{s} }
func (s *Store) Attendance() repository.AttendanceRepository      { return attendanceRepo{s} }
func (s *Store) LeaveRequests() repository.LeaveRequestRepository { return leaveRepo{s} }

// AttendanceCount reports how many attendance rows exist.
func (s *Store) AttendanceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attendances)
}

// UserCount reports how many user rows exist.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Store) userByID(id int64) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) profileByUser(userID int64) *models.Profile {
	for i := range s.profiles {
		if s.profiles[i].UserID == userID {
			return &s.profiles[i]
		}
	}
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) CreateUser(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return models.ErrDuplicateEmail
		}
		if u.EmployeeCode == user.EmployeeCode {
			return models.ErrDuplicateEmployeeCode
		}
	}
	user.ID = r.s.next("users")
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r userRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r userRepo) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u := r.s.userByID(id); u != nil {
		found := *u
		return &found, nil
	}
	return nil, nil
}

func (r userRepo) FindEmployeesWithProfiles(_ context.Context) ([]models.EmployeeWithProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.EmployeeWithProfile{}
	for _, u := range r.s.users {
		if u.Role != models.RoleEmployee {
			continue
		}
		row := models.EmployeeWithProfile{User: u}
		row.Password = ""
		if p := r.s.profileByUser(u.ID); p != nil {
			profile := *p
			row.Profile = &profile
		}
		out = append(out, row)
	}
	return out, nil
}

func (r userRepo) CountByRole(_ context.Context, role string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, u := range r.s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type profileRepo struct{ s *Store }

func (r profileRepo) FindByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.s.profileByUser(userID); p != nil {
		found := *p
		return &found, nil
	}
	return nil, nil
}

func (r profileRepo) Upsert(_ context.Context, userID int64, fields models.ProfileFields, now time.Time) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.profileByUser(userID)
	if p == nil {
		r.s.profiles = append(r.s.profiles, models.Profile{ID: r.s.next("employee_profiles"), UserID: userID})
		p = &r.s.profiles[len(r.s.profiles)-1]
	}
	p.FullName = fields.FullName
	p.Phone = fields.Phone
	p.Address = fields.Address
	if fields.JobTitle != nil {
		p.JobTitle = *fields.JobTitle
	}
	if fields.Salary != nil {
		p.Salary = *fields.Salary
	}
	p.UpdatedAt = now
	saved := *p
	return &saved, nil
}

type attendanceRepo struct{ s *Store }

func (r attendanceRepo) find(id int64) *models.Attendance {
	for i := range r.s.attendances {
		if r.s.attendances[i].ID == id {
			return &r.s.attendances[i]
		}
	}
	return nil
}

func (r attendanceRepo) CreateAttendance(_ context.Context, attendance *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.attendances {
		if a.UserID == attendance.UserID && a.Date == attendance.Date {
			return repository.ErrAttendanceExists
		}
	}
	attendance.ID = r.s.next("attendance")
	r.s.attendances = append(r.s.attendances, *attendance)
	return nil
}

func (r attendanceRepo) FindAttendanceByUserAndDate(_ context.Context, userID int64, date string) (*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.attendances {
		if a.UserID == userID && a.Date == date {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r attendanceRepo) SetCheckIn(_ context.Context, id int64, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := r.find(id)
	if a == nil || a.CheckIn != nil {
		return false, nil
	}
	a.CheckIn = &at
	a.UpdatedAt = at
	return true, nil
}

func (r attendanceRepo) SetCheckOut(_ context.Context, id int64, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := r.find(id)
	if a == nil || a.CheckIn == nil || a.CheckOut != nil {
		return false, nil
	}
	a.CheckOut = &at
	a.UpdatedAt = at
	return true, nil
}

func (r attendanceRepo) FindAttendanceByUserID(_ context.Context, userID int64) ([]models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Attendance{}
	for _, a := range r.s.attendances {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r attendanceRepo) GetAllAttendancesWithUserDetails(_ context.Context) ([]models.AttendanceWithUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.AttendanceWithUser{}
	for _, a := range r.s.attendances {
		u := r.s.userByID(a.UserID)
		if u == nil {
			continue
		}
		row := models.AttendanceWithUser{Attendance: a, UserEmail: u.Email, EmployeeCode: u.EmployeeCode}
		if p := r.s.profileByUser(a.UserID); p != nil {
			row.FullName = p.FullName
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r attendanceRepo) CountByDate(_ context.Context, date string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.attendances {
		if a.Date == date && a.CheckIn != nil {
			n++
		}
	}
	return n, nil
}

type leaveRepo struct{ s *Store }

func (r leaveRepo) Create(_ context.Context, req *models.LeaveRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req.ID = r.s.next("leave_requests")
	r.s.leaves = append(r.s.leaves, *req)
	return nil
}

func newestFirst(a, b models.LeaveRequest) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func (r leaveRepo) FindAll(_ context.Context) ([]models.LeaveRequestWithUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.LeaveRequestWithUser{}
	for _, l := range r.s.leaves {
		u := r.s.userByID(l.UserID)
		if u == nil {
			continue
		}
		row := models.LeaveRequestWithUser{LeaveRequest: l, UserEmail: u.Email, EmployeeCode: u.EmployeeCode}
		if p := r.s.profileByUser(l.UserID); p != nil {
			row.FullName = p.FullName
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return newestFirst(out[i].LeaveRequest, out[j].LeaveRequest) })
	return out, nil
}

func (r leaveRepo) FindByID(_ context.Context, id int64) (*models.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.leaves {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, nil
}

func (r leaveRepo) FindByUserID(_ context.Context, userID int64) ([]models.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.LeaveRequest{}
	for _, l := range r.s.leaves {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return newestFirst(out[i], out[j]) })
	return out, nil
}

func (r leaveRepo) UpdateStatus(_ context.Context, id int64, status, comment string, now time.Time) (*models.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.leaves {
		if r.s.leaves[i].ID == id {
			r.s.leaves[i].Status = status
			r.s.leaves[i].AdminComment = comment
			r.s.leaves[i].UpdatedAt = now
			updated := r.s.leaves[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (r leaveRepo) CountPendingRequests(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, l := range r.s.leaves {
		if l.Status == models.LeaveStatusPending {
			n++
		}
	}
	return n, nil
}

// Repositories returns the full set backed by this store.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:         s.Users(),
		Profiles:      s.Profiles(),
		Attendance:    s.Attendance(),
		LeaveRequests: s.LeaveRequests(),
	}
}
