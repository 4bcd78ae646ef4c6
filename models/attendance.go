package models

import "time"

const AttendanceStatusPresent = "Present"

// DateLayout is the calendar date format used for attendance and leave dates.
const DateLayout = "2006-01-02"

type AttendanceState int

const (
	NoRecord AttendanceState = iota
	CheckedIn
	CheckedOut
)

func (s AttendanceState) String() string {
	switch s {
	case CheckedIn:
		return "checked-in"
	case CheckedOut:
		return "checked-out"
	default:
		return "no-record"
	}
}

type Attendance struct {
	ID        int64      `json:"id" bson:"_id"`
	UserID    int64      `json:"user_id" bson:"user_id"`
	Date      string     `json:"date" bson:"date"`
	CheckIn   *time.Time `json:"check_in" bson:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out" bson:"check_out,omitempty"`
	Status    string     `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// State reports where the record sits in the check-in/check-out lifecycle.
// A nil record is NoRecord.
func (a *Attendance) State() AttendanceState {
	switch {
	case a == nil || a.CheckIn == nil:
		return NoRecord
	case a.CheckOut == nil:
		return CheckedIn
	default:
		return CheckedOut
	}
}

type AttendanceWithUser struct {
	Attendance   `bson:",inline"`
	UserEmail    string `json:"user_email" bson:"user_email"`
	EmployeeCode string `json:"employee_id" bson:"employee_code"`
	FullName     string `json:"full_name,omitempty" bson:"full_name,omitempty"`
}
