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

// VolunteerFilter narrows volunteer listings; zero values mean "any"
type VolunteerFilter struct {
	Skill        string
	Availability entity.Availability
}

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *entity.Volunteer) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Volunteer, error)
	List(ctx context.Context, filter VolunteerFilter, limit, offset int) ([]*entity.Volunteer, error)
	Update(ctx context.Context, volunteer *entity.Volunteer) error
}

type mongoVolunteerRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoVolunteerRepository(db *mongo.Database, log *zap.Logger) VolunteerRepository {
	return &mongoVolunteerRepository{
		coll: db.Collection(database.CollVolunteers),
		log:  log,
	}
}

func (vr *mongoVolunteerRepository) Create(ctx context.Context, volunteer *entity.Volunteer) error {
	if _, err := vr.coll.InsertOne(ctx, volunteer); err != nil {
		vr.log.Error("Failed to create volunteer profile",
			zap.Error(err),
			zap.String("user_id", volunteer.UserID.String()),
		)
		return fmt.Errorf("create volunteer for user %s: %w", volunteer.UserID.String(), err)
	}

	return nil
}

func (vr *mongoVolunteerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Volunteer, error) {
	var volunteer entity.Volunteer

	err := vr.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&volunteer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		vr.log.Error("Failed to find volunteer",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find volunteer for user %s: %w", userID.String(), err)
	}

	return &volunteer, nil
}

func (vr *mongoVolunteerRepository) List(ctx context.Context, filter VolunteerFilter, limit, offset int) ([]*entity.Volunteer, error) {
	query := bson.M{}
	if filter.Skill != "" {
		query["skills"] = filter.Skill
	}
	if filter.Availability != "" {
		query["availability"] = filter.Availability
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := vr.coll.Find(ctx, query, opts)
	if err != nil {
		vr.log.Error("Failed to list volunteers", zap.Error(err))
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer cursor.Close(ctx)

	volunteers := []*entity.Volunteer{}
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, fmt.Errorf("decode volunteers: %w", err)
	}

	return volunteers, nil
}

func (vr *mongoVolunteerRepository) Update(ctx context.Context, volunteer *entity.Volunteer) error {
	volunteer.UpdatedAt = time.Now()

	result, err := vr.coll.ReplaceOne(ctx, bson.M{"_id": volunteer.ID}, volunteer)
	if err != nil {
		vr.log.Error("Failed to update volunteer",
			zap.Error(err),
			zap.String("user_id", volunteer.UserID.String()),
		)
		return fmt.Errorf("update volunteer for user %s: %w", volunteer.UserID.String(), err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("volunteer for user %s not found", volunteer.UserID.String())
	}

	return nil
}
