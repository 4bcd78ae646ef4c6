package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-portal/config"
	"employee-portal/models"
)

// ErrAttendanceExists is returned by CreateAttendance when the user already
// has a record for that date.
var ErrAttendanceExists = errors.New("attendance already recorded for this date")

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, attendance *models.Attendance) error
	FindAttendanceByUserAndDate(ctx context.Context, userID int64, date string) (*models.Attendance, error)
	SetCheckIn(ctx context.Context, id int64, at time.Time) (bool, error)
	SetCheckOut(ctx context.Context, id int64, at time.Time) (bool, error)
	FindAttendanceByUserID(ctx context.Context, userID int64) ([]models.Attendance, error)
	GetAllAttendancesWithUserDetails(ctx context.Context) ([]models.AttendanceWithUser, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
	seq                  *SequenceGenerator
}

func NewAttendanceRepository(db *mongo.Database, seq *SequenceGenerator) AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: db.Collection(config.AttendanceCollection),
		seq:                  seq,
	}
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) error {
	id, err := r.seq.NextID(ctx, config.AttendanceCollection)
	if err != nil {
		return err
	}
	attendance.ID = id

	if _, err := r.attendanceCollection.InsertOne(ctx, attendance); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAttendanceExists
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID int64, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "date": date}
	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by user and date: %w", err)
	}
	return &attendance, nil
}

// SetCheckIn stamps check_in on a record that has none. It reports whether the
// record was changed.
func (r *attendanceRepository) SetCheckIn(ctx context.Context, id int64, at time.Time) (bool, error) {
	filter := bson.M{"_id": id, "check_in": nil}
	update := bson.M{"$set": bson.M{"check_in": at, "updated_at": at}}

	res, err := r.attendanceCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to record check-in: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// SetCheckOut stamps check_out on a checked-in record that has not been
// checked out yet. It reports whether the record was changed.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id int64, at time.Time) (bool, error) {
	filter := bson.M{
		"_id":       id,
		"check_in":  bson.M{"$ne": nil},
		"check_out": nil,
	}
	update := bson.M{"$set": bson.M{"check_out": at, "updated_at": at}}

	res, err := r.attendanceCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to record check-out: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *attendanceRepository) FindAttendanceByUserID(ctx context.Context, userID int64) ([]models.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance history: %w", err)
	}
	defer cursor.Close(ctx)

	var attendances []models.Attendance
	if err = cursor.All(ctx, &attendances); err != nil {
		return nil, fmt.Errorf("failed to decode attendance history: %w", err)
	}

	if len(attendances) == 0 {
		return []models.Attendance{}, nil
	}
	return attendances, nil
}

func (r *attendanceRepository) GetAllAttendancesWithUserDetails(ctx context.Context) ([]models.AttendanceWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "check_in", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.ProfileCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "user_id"},
			{Key: "as", Value: "profileDetails"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$profileDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_email", Value: "$userDetails.email"},
			{Key: "employee_code", Value: "$userDetails.employee_code"},
			{Key: "full_name", Value: "$profileDetails.full_name"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "userDetails", Value: 0},
			{Key: "profileDetails", Value: 0},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance history: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode attendance history: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, nil
	}
	return results, nil
}

// CountByDate counts records checked in on the given date.
func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	filter := bson.M{"date": date, "check_in": bson.M{"$ne": nil}}
	count, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}
