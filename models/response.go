package models

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User    User   `json:"user"`
}

type AttendanceSuccessResponse struct {
	Message    string      `json:"message" example:"Checked in"`
	Attendance *Attendance `json:"attendance"`
}

type LeaveRequestSuccessResponse struct {
	Message      string        `json:"message" example:"Leave request submitted"`
	LeaveRequest *LeaveRequest `json:"leave_request"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type FieldError struct {
	Field string `json:"field" example:"Email"`
	Tag   string `json:"tag" example:"email"`
	Msg   string `json:"message" example:"Invalid email format."`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Authorization header is required"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Access denied for this role"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Leave request not found"`
}
