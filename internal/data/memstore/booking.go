package memstore

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/repository"
	"helper-booking/pkg/database"

	"github.com/google/uuid"
)

type bookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{store: store}
}

func cloneBooking(b *entity.Booking) *entity.Booking {
	c := *b
	if b.Feedback != nil {
		fb := *b.Feedback
		c.Feedback = &fb
	}
	return &c
}

func (br *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	br.store.Insert(database.CollBookings, booking.ID.String(), cloneBooking(booking))
	return nil
}

func (br *bookingRepository) FindByBookingID(_ context.Context, bookingID string) (*entity.Booking, error) {
	for _, rec := range br.store.List(database.CollBookings) {
		booking := rec.(*entity.Booking)
		if booking.BookingID == bookingID {
			return cloneBooking(booking), nil
		}
	}
	return nil, nil
}

func (br *bookingRepository) ListByCustomer(_ context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return br.list(func(b *entity.Booking) bool { return b.CustomerID == customerID }, limit, offset), nil
}

func (br *bookingRepository) ListByProvider(_ context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return br.list(func(b *entity.Booking) bool { return b.ProviderID == providerID }, limit, offset), nil
}

func (br *bookingRepository) list(match func(*entity.Booking) bool, limit, offset int) []*entity.Booking {
	matched := []*entity.Booking{}
	for _, rec := range br.store.List(database.CollBookings) {
		booking := rec.(*entity.Booking)
		if match(booking) {
			matched = append(matched, cloneBooking(booking))
		}
	}
	return window(matched, limit, offset)
}

func (br *bookingRepository) Update(_ context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now()
	if !br.store.Update(database.CollBookings, booking.ID.String(), cloneBooking(booking)) {
		return fmt.Errorf("booking %s not found", booking.BookingID)
	}
	return nil
}
