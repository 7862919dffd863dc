package memstore

import (
	"context"

	"helper-booking/internal/data/repository"
)

// NewRepository builds a full repository bundle over one shared Store
func NewRepository(store *Store) *repository.Repository {
	return &repository.Repository{
		User:        NewUserRepository(store),
		Booking:     NewBookingRepository(store),
		HelpRequest: NewHelpRequestRepository(store),
		Volunteer:   NewVolunteerRepository(store),
		Wallet:      NewWalletRepository(store),
		Counter:     NewCounterRepository(store),
	}
}

type counterRepository struct {
	store *Store
}

func NewCounterRepository(store *Store) repository.CounterRepository {
	return &counterRepository{store: store}
}

func (cr *counterRepository) Next(_ context.Context, kind string) (int64, error) {
	return cr.store.NextSeq(kind), nil
}

// window applies newest-first ordering plus limit/offset to a slice
// that arrives in insertion order
func window[T any](items []T, limit, offset int) []T {
	// reverse copy, newest first
	out := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}

	if offset >= len(out) {
		return []T{}
	}
	out = out[offset:]

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
