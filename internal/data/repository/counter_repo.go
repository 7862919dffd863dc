package repository

import (
	"context"
	"fmt"

	"helper-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Counter kinds used for public id sequences
const (
	CounterBookings     = "bookings"
	CounterHelpRequests = "help_requests"
	CounterTransactions = "wallet_transactions"
)

// CounterRepository hands out monotonically increasing sequence
// numbers per record kind. Implementations must be atomic so two
// concurrent first saves can never draw the same number.
type CounterRepository interface {
	Next(ctx context.Context, kind string) (int64, error)
}

type mongoCounterRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoCounterRepository(db *mongo.Database, log *zap.Logger) CounterRepository {
	return &mongoCounterRepository{
		coll: db.Collection(database.CollCounters),
		log:  log,
	}
}

// Next increments the counter document atomically and returns the new
// value, creating the document on first use
func (cr *mongoCounterRepository) Next(ctx context.Context, kind string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}

	err := cr.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": kind},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		cr.log.Error("Failed to advance counter",
			zap.Error(err),
			zap.String("kind", kind),
		)
		return 0, fmt.Errorf("next sequence for %s: %w", kind, err)
	}

	return doc.Seq, nil
}
