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

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	Upsert(ctx context.Context, userID int64, fields models.ProfileFields, now time.Time) (*models.Profile, error)
}

type profileRepository struct {
	collection *mongo.Collection
	seq        *SequenceGenerator
}

func NewProfileRepository(db *mongo.Database, seq *SequenceGenerator) ProfileRepository {
	return &profileRepository{
		collection: db.Collection(config.ProfileCollection),
		seq:        seq,
	}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// Upsert applies fields to the user's profile in a single write, creating the
// profile when it does not exist yet.
func (r *profileRepository) Upsert(ctx context.Context, userID int64, fields models.ProfileFields, now time.Time) (*models.Profile, error) {
	set := bson.M{
		"full_name":  fields.FullName,
		"phone":      fields.Phone,
		"address":    fields.Address,
		"updated_at": now,
	}
	if fields.JobTitle != nil {
		set["job_title"] = *fields.JobTitle
	}
	if fields.Salary != nil {
		set["salary"] = *fields.Salary
	}
	update := bson.M{"$set": set}

	existing, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		id, err := r.seq.NextID(ctx, config.ProfileCollection)
		if err != nil {
			return nil, err
		}
		setOnInsert := bson.M{"_id": id}
		if fields.JobTitle == nil {
			setOnInsert["job_title"] = ""
		}
		if fields.Salary == nil {
			setOnInsert["salary"] = float64(0)
		}
		update["$setOnInsert"] = setOnInsert
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var profile models.Profile
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return &profile, nil
}
