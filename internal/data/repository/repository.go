package repository

import (
	"helper-booking/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Repository bundles every per-entity repository behind its interface.
// Handlers and services never learn which store answers a call.
type Repository struct {
	User        UserRepository
	Booking     BookingRepository
	HelpRequest HelpRequestRepository
	Volunteer   VolunteerRepository
	Wallet      WalletRepository
	Counter     CounterRepository
}

// NewMongoRepository builds the live-store implementations
func NewMongoRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewMongoUserRepository(db, log),
		Booking:     NewMongoBookingRepository(db, log),
		HelpRequest: NewMongoHelpRequestRepository(db, log),
		Volunteer:   NewMongoVolunteerRepository(db, log),
		Wallet:      NewMongoWalletRepository(db, log),
		Counter:     NewMongoCounterRepository(db, log),
	}
}

// NewFallbackRepository wraps a live and a memory repository pair so
// that every call is routed by the current connectivity state. The
// live side may be nil, in which case the memory store always answers.
func NewFallbackRepository(live, mem *Repository, state *database.ConnState) *Repository {
	return &Repository{
		User:        &fallbackUserRepository{state: state, live: liveOrNil(live).User, mem: mem.User},
		Booking:     &fallbackBookingRepository{state: state, live: liveOrNil(live).Booking, mem: mem.Booking},
		HelpRequest: &fallbackHelpRequestRepository{state: state, live: liveOrNil(live).HelpRequest, mem: mem.HelpRequest},
		Volunteer:   &fallbackVolunteerRepository{state: state, live: liveOrNil(live).Volunteer, mem: mem.Volunteer},
		Wallet:      &fallbackWalletRepository{state: state, live: liveOrNil(live).Wallet, mem: mem.Wallet},
		Counter:     &fallbackCounterRepository{state: state, live: liveOrNil(live).Counter, mem: mem.Counter},
	}
}

func liveOrNil(live *Repository) *Repository {
	if live == nil {
		return &Repository{}
	}
	return live
}
