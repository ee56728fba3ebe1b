package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// CounterRepository hands out monotonically increasing integer ids per
// entity, backed by an atomic findOneAndUpdate on a counters collection.
type CounterRepository struct {
	coll *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{coll: db.Collection(countersCollection)}
}

// Next returns the next id in the named sequence, creating the sequence on
// first use.
func (r *CounterRepository) Next(ctx context.Context, sequence string) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}

	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", sequence, err)
	}

	return doc.Value, nil
}
