package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UserCollection         = "users"
	ProfileCollection      = "employee_profiles"
	AttendanceCollection   = "attendance"
	LeaveRequestCollection = "leave_requests"
	CounterCollection      = "counters"
)

// MongoConnect dials MongoDB and verifies the connection with a ping.
func MongoConnect(ctx context.Context, mongoURI string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

// InitDatabase creates the unique indexes the data model relies on.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			{Keys: bson.D{{Key: "employee_code", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_employee_code")},
			{Keys: bson.D{{Key: "role", Value: 1}}, Options: options.Index().SetName("idx_role")},
		},
		ProfileCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_profile_user")},
		},
		AttendanceCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_attendance_user_date")},
			{Keys: bson.D{{Key: "date", Value: -1}}, Options: options.Index().SetName("idx_attendance_date")},
		},
		LeaveRequestCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_leave_user_created")},
			{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("idx_leave_status")},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
		log.Printf("Indexes ready for collection %s", collection)
	}
	return nil
}

func DisconnectDB(client *mongo.Client) {
	if client != nil {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
			return
		}
		log.Println("Disconnected from MongoDB")
	}
}
