package models

import "time"

type Profile struct {
	ID        int64     `json:"id" bson:"_id"`
	UserID    int64     `json:"user_id" bson:"user_id"`
	FullName  string    `json:"full_name" bson:"full_name"`
	Phone     string    `json:"phone" bson:"phone"`
	Address   string    `json:"address" bson:"address"`
	JobTitle  string    `json:"job_title" bson:"job_title"`
	Salary    float64   `json:"salary" bson:"salary"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ProfileFields is the set of values applied by an upsert. Nil pointers leave
// the stored value untouched.
type ProfileFields struct {
	FullName string
	Phone    string
	Address  string
	JobTitle *string
	Salary   *float64
}

type ProfileSelfUpdatePayload struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=100"`
	Phone    string `json:"phone" form:"phone" validate:"max=20"`
	Address  string `json:"address" form:"address" validate:"max=255"`
}

type ProfileAdminUpdatePayload struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=100"`
	Phone    string `json:"phone" form:"phone" validate:"max=20"`
	Address  string `json:"address" form:"address" validate:"max=255"`
	JobTitle string `json:"job_title" form:"job_title" validate:"max=100"`
	Salary   string `json:"salary" form:"salary" validate:"required,salary"`
}
