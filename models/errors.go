package models

import "errors"

var (
	ErrUnauthenticated       = errors.New("authentication required")
	ErrForbidden             = errors.New("access denied for this role")
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrDuplicateEmployeeCode = errors.New("employee id already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrNotFound              = errors.New("record not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidDate           = errors.New("invalid date")
)
