package repository

import "go.mongodb.org/mongo-driver/mongo"

// Repositories bundles the stores the application is wired with.
type Repositories struct {
	Users         UserRepository
	Profiles      ProfileRepository
	Attendance    AttendanceRepository
	LeaveRequests LeaveRequestRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	seq := NewSequenceGenerator(db)
	return &Repositories{
		Users:         NewUserRepository(db, seq),
		Profiles:      NewProfileRepository(db, seq),
		Attendance:    NewAttendanceRepository(db, seq),
		LeaveRequests: NewLeaveRequestRepository(db, seq),
	}
}
