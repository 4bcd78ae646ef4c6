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

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) error
	FindAll(ctx context.Context) ([]models.LeaveRequestWithUser, error)
	FindByID(ctx context.Context, id int64) (*models.LeaveRequest, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status, comment string, now time.Time) (*models.LeaveRequest, error)
	CountPendingRequests(ctx context.Context) (int64, error)
}

type leaveRequestRepository struct {
	collection *mongo.Collection
	seq        *SequenceGenerator
}

func NewLeaveRequestRepository(db *mongo.Database, seq *SequenceGenerator) LeaveRequestRepository {
	return &leaveRequestRepository{
		collection: db.Collection(config.LeaveRequestCollection),
		seq:        seq,
	}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) error {
	id, err := r.seq.NextID(ctx, config.LeaveRequestCollection)
	if err != nil {
		return err
	}
	req.ID = id

	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

// FindAll returns every request, newest first, joined with the owner's
// account and profile.
func (r *leaveRequestRepository) FindAll(ctx context.Context) ([]models.LeaveRequestWithUser, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.UserCollection},
				{Key: "localField", Value: "user_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "user_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$user_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.ProfileCollection},
				{Key: "localField", Value: "user_id"},
				{Key: "foreignField", Value: "user_id"},
				{Key: "as", Value: "profile_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$profile_info"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			},
		}},
		bson.D{{
			Key: "$project",
			Value: bson.D{
				{Key: "_id", Value: 1},
				{Key: "user_id", Value: 1},
				{Key: "leave_type", Value: 1},
				{Key: "start_date", Value: 1},
				{Key: "end_date", Value: 1},
				{Key: "days", Value: 1},
				{Key: "reason", Value: 1},
				{Key: "status", Value: 1},
				{Key: "admin_comment", Value: 1},
				{Key: "created_at", Value: 1},
				{Key: "updated_at", Value: 1},
				{Key: "user_email", Value: "$user_info.email"},
				{Key: "employee_code", Value: "$user_info.employee_code"},
				{Key: "full_name", Value: "$profile_info.full_name"},
			},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leave requests with user details: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequestWithUser
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests with user details: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequestWithUser{}, nil
	}
	return requests, nil
}

func (r *leaveRequestRepository) FindByUserID(ctx context.Context, userID int64) ([]models.LeaveRequest, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave requests for user: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequest{}, nil
	}
	return requests, nil
}

func (r *leaveRequestRepository) FindByID(ctx context.Context, id int64) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave request by id: %w", err)
	}
	return &request, nil
}

// UpdateStatus stores the decision and returns the updated request, or nil
// when no request has that id.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status, comment string, now time.Time) (*models.LeaveRequest, error) {
	update := bson.M{
		"$set": bson.M{
			"status":        status,
			"admin_comment": comment,
			"updated_at":    now,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var request models.LeaveRequest
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update leave request status: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.LeaveStatusPending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}
