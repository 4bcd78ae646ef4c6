package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-portal/config"
	"employee-portal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	FindEmployeesWithProfiles(ctx context.Context) ([]models.EmployeeWithProfile, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type userRepository struct {
	collection *mongo.Collection
	seq        *SequenceGenerator
}

func NewUserRepository(db *mongo.Database, seq *SequenceGenerator) UserRepository {
	return &userRepository{
		collection: db.Collection(config.UserCollection),
		seq:        seq,
	}
}

// CreateUser assigns the next user id and inserts the row. A unique index
// violation is reported as ErrDuplicateEmail or ErrDuplicateEmployeeCode.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	id, err := r.seq.NextID(ctx, config.UserCollection)
	if err != nil {
		return err
	}
	user.ID = id

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "uniq_employee_code") {
				return models.ErrDuplicateEmployeeCode
			}
			return models.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindEmployeesWithProfiles(ctx context.Context) ([]models.EmployeeWithProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "role", Value: models.RoleEmployee}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.ProfileCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "user_id"},
			{Key: "as", Value: "profile"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$profile"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "password", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate employees with profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.EmployeeWithProfile
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	if len(results) == 0 {
		return []models.EmployeeWithProfile{}, nil
	}
	return results, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
