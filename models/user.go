package models

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type User struct {
	ID           int64     `json:"id" bson:"_id"`
	EmployeeCode string    `json:"employee_id" bson:"employee_code"`
	Email        string    `json:"email" bson:"email"`
	Password     string    `json:"-" bson:"password"`
	Role         string    `json:"role" bson:"role"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DashboardPath is where a signed-in user lands.
func (u *User) DashboardPath() string {
	if u.IsAdmin() {
		return "/admin/dashboard"
	}
	return "/employee/dashboard"
}

type UserSignupPayload struct {
	EmployeeCode string `json:"employee_id" form:"employee_id" validate:"required,max=20"`
	Email        string `json:"email" form:"email" validate:"required,email,max=120"`
	Password     string `json:"password" form:"password" validate:"required,max=72"`
	Role         string `json:"role" form:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
}

type UserLoginPayload struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// EmployeeWithProfile is a user row joined with its optional profile.
type EmployeeWithProfile struct {
	User    `bson:",inline"`
	Profile *Profile `json:"profile,omitempty" bson:"profile,omitempty"`
}

type DashboardStats struct {
	TotalEmployees       int64 `json:"total_employees"`
	PendingLeaveRequests int64 `json:"pending_leave_requests"`
	CheckedInToday       int64 `json:"checked_in_today"`
}
