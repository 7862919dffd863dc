package repository

import (
	"context"

	"helper-booking/internal/data/entity"
	"helper-booking/pkg/database"

	"github.com/google/uuid"
)

// The fallback wrappers route every call to the live store while the
// connectivity state reports connected, and to the memory store
// otherwise. The choice is made per call, so a connection flap mid
// request affects at most the calls issued after it. Both stores
// answer the same interface and downstream code never branches on mode.

type fallbackUserRepository struct {
	state *database.ConnState
	live  UserRepository
	mem   UserRepository
}

func (r *fallbackUserRepository) pick() UserRepository {
	if r.state.Connected() && r.live != nil {
		return r.live
	}
	return r.mem
}

func (r *fallbackUserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.pick().Create(ctx, user)
}

func (r *fallbackUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.pick().FindByID(ctx, id)
}

func (r *fallbackUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.pick().FindByEmail(ctx, email)
}

func (r *fallbackUserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.pick().Update(ctx, user)
}

type fallbackBookingRepository struct {
	state *database.ConnState
	live  BookingRepository
	mem   BookingRepository
}

func (r *fallbackBookingRepository) pick() BookingRepository {
	if r.state.Connected() && r.live != nil {
		return r.live
	}
	return r.mem
}

func (r *fallbackBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.pick().Create(ctx, booking)
}

func (r *fallbackBookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	return r.pick().FindByBookingID(ctx, bookingID)
}

func (r *fallbackBookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return r.pick().ListByCustomer(ctx, customerID, limit, offset)
}

func (r *fallbackBookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return r.pick().ListByProvider(ctx, providerID, limit, offset)
}

func (r *fallbackBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.pick().Update(ctx, booking)
}

type fallbackHelpRequestRepository struct {
	state *database.ConnState
	live  HelpRequestRepository
	mem   HelpRequestRepository
}

func (r *fallbackHelpRequestRepository) pick() HelpRequestRepository {
	if r.state.Connected() && r.live != nil {
		return r.live
	}
	return r.mem
}

func (r *fallbackHelpRequestRepository) Create(ctx context.Context, request *entity.HelpRequest) error {
	return r.pick().Create(ctx, request)
}

func (r *fallbackHelpRequestRepository) FindByRequestID(ctx context.Context, requestID string) (*entity.HelpRequest, error) {
	return r.pick().FindByRequestID(ctx, requestID)
}

func (r *fallbackHelpRequestRepository) ListPublic(ctx context.Context, limit, offset int) ([]*entity.HelpRequest, error) {
	return r.pick().ListPublic(ctx, limit, offset)
}

func (r *fallbackHelpRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HelpRequest, error) {
	return r.pick().ListByUser(ctx, userID, limit, offset)
}

func (r *fallbackHelpRequestRepository) Update(ctx context.Context, request *entity.HelpRequest) error {
	return r.pick().Update(ctx, request)
}

type fallbackVolunteerRepository struct {
	state *database.ConnState
	live  VolunteerRepository
	mem   VolunteerRepository
}

func (r *fallbackVolunteerRepository) pick() VolunteerRepository {
	if r.state.Connected() && r.live != nil {
		return r.live
	}
	return r.mem
}

func (r *fallbackVolunteerRepository) Create(ctx context.Context, volunteer *entity.Volunteer) error {
	return r.pick().Create(ctx, volunteer)
}

func (r *fallbackVolunteerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Volunteer, error) {
	return r.pick().FindByUserID(ctx, userID)
}

func (r *fallbackVolunteerRepository) List(ctx context.Context, filter VolunteerFilter, limit, offset int) ([]*entity.Volunteer, error) {
	return r.pick().List(ctx, filter, limit, offset)
}

func (r *fallbackVolunteerRepository) Update(ctx context.Context, volunteer *entity.Volunteer) error {
	return r.pick().Update(ctx, volunteer)
}

type fallbackWalletRepository struct {
	state *database.ConnState
	live  WalletRepository
	mem   WalletRepository
}

func (r *fallbackWalletRepository) pick() WalletRepository {
	if r.state.Connected() && r.live != nil {
		return r.live
	}
	return r.mem
}

func (r *fallbackWalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	return r.pick().Create(ctx, wallet)
}

func (r *fallbackWalletRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	return r.pick().FindByUserID(ctx, userID)
}

func (r *fallbackWalletRepository) FindByReferralCode(ctx context.Context, code string) (*entity.Wallet, error) {
	return r.pick().FindByReferralCode(ctx, code)
}

func (r *fallbackWalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	return r.pick().Update(ctx, wallet)
}

func (r *fallbackWalletRepository) AddTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	return r.pick().AddTransaction(ctx, txn)
}

func (r *fallbackWalletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WalletTransaction, error) {
	return r.pick().ListTransactions(ctx, userID, limit, offset)
}

type fallbackCounterRepository struct {
	state *database.ConnState
	live  CounterRepository
	mem   CounterRepository
}

func (r *fallbackCounterRepository) pick() CounterRepository {
	if r.state.Connected() && r.live != nil {
		return r.live
	}
	return r.mem
}

func (r *fallbackCounterRepository) Next(ctx context.Context, kind string) (int64, error) {
	return r.pick().Next(ctx, kind)
}
