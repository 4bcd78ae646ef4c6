package models

import "time"

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

type LeaveRequest struct {
	ID           int64     `json:"id" bson:"_id"`
	UserID       int64     `json:"user_id" bson:"user_id"`
	LeaveType    string    `json:"leave_type" bson:"leave_type"`
	StartDate    string    `json:"start_date" bson:"start_date"`
	EndDate      string    `json:"end_date" bson:"end_date"`
	Days         int       `json:"days" bson:"days"`
	Reason       string    `json:"reason" bson:"reason"`
	Status       string    `json:"status" bson:"status"`
	AdminComment string    `json:"admin_comment" bson:"admin_comment"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type LeaveRequestWithUser struct {
	LeaveRequest `bson:",inline"`
	UserEmail    string `json:"user_email" bson:"user_email"`
	EmployeeCode string `json:"employee_id" bson:"employee_code"`
	FullName     string `json:"full_name,omitempty" bson:"full_name,omitempty"`
}

type LeaveRequestCreatePayload struct {
	LeaveType string `json:"leave_type" form:"leave_type" validate:"required,max=50"`
	StartDate string `json:"start_date" form:"start_date" validate:"required"`
	EndDate   string `json:"end_date" form:"end_date" validate:"required"`
	Reason    string `json:"reason" form:"reason" validate:"max=1000"`
}

type LeaveRequestDecisionPayload struct {
	Status       string `json:"status" form:"status" validate:"required,oneof=Pending Approved Rejected"`
	AdminComment string `json:"admin_comment" form:"admin_comment" validate:"max=1000"`
}
