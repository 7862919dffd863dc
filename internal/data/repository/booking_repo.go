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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type mongoBookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoBookingRepository(db *mongo.Database, log *zap.Logger) BookingRepository {
	return &mongoBookingRepository{
		coll: db.Collection(database.CollBookings),
		log:  log,
	}
}

func (br *mongoBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if _, err := br.coll.InsertOne(ctx, booking); err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (br *mongoBookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	var booking entity.Booking

	err := br.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	return &booking, nil
}

func (br *mongoBookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return br.list(ctx, bson.M{"customer_id": customerID}, limit, offset)
}

func (br *mongoBookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return br.list(ctx, bson.M{"provider_id": providerID}, limit, offset)
}

// list runs a filtered query, newest first
func (br *mongoBookingRepository) list(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := br.coll.Find(ctx, filter, opts)
	if err != nil {
		br.log.Error("Failed to list bookings", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*entity.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (br *mongoBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now()

	result, err := br.coll.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking)
	if err != nil {
		br.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("update booking %s: %w", booking.BookingID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", booking.BookingID)
	}

	return nil
}
