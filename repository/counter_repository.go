package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-portal/config"
)

// SequenceGenerator hands out monotonically increasing integer ids, one
// sequence per collection, backed by a counters collection.
type SequenceGenerator struct {
	collection *mongo.Collection
}

func NewSequenceGenerator(db *mongo.Database) *SequenceGenerator {
	return &SequenceGenerator{
		collection: db.Collection(config.CounterCollection),
	}
}

func (g *SequenceGenerator) NextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := g.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", name, err)
	}
	return counter.Seq, nil
}
