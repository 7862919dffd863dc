package repository

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/pkg/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type HelpRequestRepository interface {
	Create(ctx context.Context, request *entity.HelpRequest) error
	FindByRequestID(ctx context.Context, requestID string) (*entity.HelpRequest, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*entity.HelpRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HelpRequest, error)
	Update(ctx context.Context, request *entity.HelpRequest) error
}

type mongoHelpRequestRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoHelpRequestRepository(db *mongo.Database, log *zap.Logger) HelpRequestRepository {
	return &mongoHelpRequestRepository{
		coll: db.Collection(database.CollHelpRequests),
		log:  log,
	}
}

func (hr *mongoHelpRequestRepository) Create(ctx context.Context, request *entity.HelpRequest) error {
	if _, err := hr.coll.InsertOne(ctx, request); err != nil {
		hr.log.Error("Failed to create help request",
			zap.Error(err),
			zap.String("request_id", request.RequestID),
		)
		return fmt.Errorf("create help request %s: %w", request.RequestID, err)
	}

	return nil
}

func (hr *mongoHelpRequestRepository) FindByRequestID(ctx context.Context, requestID string) (*entity.HelpRequest, error) {
	var request entity.HelpRequest

	err := hr.coll.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		hr.log.Error("Failed to find help request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		return nil, fmt.Errorf("find help request %s: %w", requestID, err)
	}

	return &request, nil
}

func (hr *mongoHelpRequestRepository) ListPublic(ctx context.Context, limit, offset int) ([]*entity.HelpRequest, error) {
	return hr.list(ctx, bson.M{"is_public": true}, limit, offset)
}

// ListByUser returns requests the user created or volunteers on
func (hr *mongoHelpRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HelpRequest, error) {
	filter := bson.M{"$or": []bson.M{
		{"requester_id": userID},
		{"volunteer_id": userID},
	}}
	return hr.list(ctx, filter, limit, offset)
}

func (hr *mongoHelpRequestRepository) list(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.HelpRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := hr.coll.Find(ctx, filter, opts)
	if err != nil {
		hr.log.Error("Failed to list help requests", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("list help requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []*entity.HelpRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode help requests: %w", err)
	}

	return requests, nil
}

func (hr *mongoHelpRequestRepository) Update(ctx context.Context, request *entity.HelpRequest) error {
	request.UpdatedAt = time.Now()

	result, err := hr.coll.ReplaceOne(ctx, bson.M{"_id": request.ID}, request)
	if err != nil {
		hr.log.Error("Failed to update help request",
			zap.Error(err),
			zap.String("request_id", request.RequestID),
		)
		return fmt.Errorf("update help request %s: %w", request.RequestID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("help request %s not found", request.RequestID)
	}

	return nil
}
