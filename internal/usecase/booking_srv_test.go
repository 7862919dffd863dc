package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingAssignsSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)

	first := createTestBooking(t, svc, customerID, provider.User.ID, 200)
	second := createTestBooking(t, svc, customerID, provider.User.ID, 300)

	assert.True(t, strings.HasPrefix(first.BookingID, "BK-"))
	assert.True(t, strings.HasPrefix(second.BookingID, "BK-"))
	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.True(t, strings.HasSuffix(first.BookingID, "000001"))
	assert.True(t, strings.HasSuffix(second.BookingID, "000002"))

	assert.Equal(t, entity.BookingStatusPending, first.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, first.PaymentStatus)
}

func TestCreateBookingRejections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	other := registerUser(t, svc, "Ravi", "ravi@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	// target must hold the provider role
	_, err := svc.Booking.CreateBooking(ctx, customerID, &request.CreateBookingRequest{
		ProviderID:    other.User.ID,
		ServiceType:   "plumber",
		ScheduledAt:   time.Now().Add(time.Hour),
		Address:       "12 Canal Street",
		Amount:        100,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// no booking your own services
	_, err = svc.Booking.CreateBooking(ctx, providerID, &request.CreateBookingRequest{
		ProviderID:    provider.User.ID,
		ServiceType:   "plumber",
		ScheduledAt:   time.Now().Add(time.Hour),
		Address:       "12 Canal Street",
		Amount:        100,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own services")

	// no booking in the past
	_, err = svc.Booking.CreateBooking(ctx, customerID, &request.CreateBookingRequest{
		ProviderID:    provider.User.ID,
		ServiceType:   "plumber",
		ScheduledAt:   time.Now().Add(-time.Hour),
		Address:       "12 Canal Street",
		Amount:        100,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "past time")
}

func TestBookingStatusTransitions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	// customer may not confirm
	_, err := svc.Booking.UpdateStatus(ctx, customerID, entity.RoleCustomer, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")

	// pending cannot jump straight to completed
	_, err = svc.Booking.UpdateStatus(ctx, providerID, entity.RoleProvider, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "completed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal status transition")

	// the legal path
	for _, status := range []string{"confirmed", "in-progress", "completed"} {
		updated, err := svc.Booking.UpdateStatus(ctx, providerID, entity.RoleProvider, booking.BookingID,
			&request.UpdateBookingStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatus(status), updated.Status)
	}

	// only admin may refund
	_, err = svc.Booking.UpdateStatus(ctx, providerID, entity.RoleProvider, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "refunded"})
	require.Error(t, err)

	admin := registerUser(t, svc, "Ops", "ops@example.com", "")
	refunded, err := svc.Booking.UpdateStatus(ctx, mustUUID(t, admin.User.ID), entity.RoleAdmin, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "refunded"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusRefunded, refunded.Status)
}

func TestCustomerCanCancelPendingBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	cancelled, err := svc.Booking.UpdateStatus(ctx, customerID, entity.RoleCustomer, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	// terminal apart from refund
	_, err = svc.Booking.UpdateStatus(ctx, customerID, entity.RoleCustomer, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.Error(t, err)
}

func TestProviderCannotCancelBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	// cancellation belongs to the customer, providers refuse work by
	// never confirming
	_, err := svc.Booking.UpdateStatus(ctx, providerID, entity.RoleProvider, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestCompletionSettlesPaidBooking(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	_, err := svc.Wallet.AddMoney(ctx, customerID, &request.AddMoneyRequest{Amount: 500})
	require.NoError(t, err)
	_, err = svc.Wallet.PayBooking(ctx, customerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.NoError(t, err)

	for _, status := range []string{"confirmed", "in-progress", "completed"} {
		_, err = svc.Booking.UpdateStatus(ctx, providerID, entity.RoleProvider, booking.BookingID,
			&request.UpdateBookingStatusRequest{Status: status})
		require.NoError(t, err)
	}

	providerWallet, err := repo.Wallet.FindByUserID(ctx, providerID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, providerWallet.Balance)

	customerWallet, err := repo.Wallet.FindByUserID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, customerWallet.Balance)
	assert.Equal(t, 20, customerWallet.RewardPoints)
}

func TestRefundReturnsPaidAmount(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	_, err := svc.Wallet.AddMoney(ctx, customerID, &request.AddMoneyRequest{Amount: 200})
	require.NoError(t, err)
	_, err = svc.Wallet.PayBooking(ctx, customerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.NoError(t, err)

	_, err = svc.Booking.UpdateStatus(ctx, customerID, entity.RoleCustomer, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	admin := registerUser(t, svc, "Ops", "ops@example.com", "")
	refunded, err := svc.Booking.UpdateStatus(ctx, mustUUID(t, admin.User.ID), entity.RoleAdmin, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "refunded"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, refunded.PaymentStatus)

	wallet, err := repo.Wallet.FindByUserID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, wallet.Balance)
}

func TestAddFeedbackRules(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	// not before completion
	_, err := svc.Booking.AddFeedback(ctx, customerID, booking.BookingID,
		&request.BookingFeedbackRequest{Rating: 5})
	require.Error(t, err)

	for _, status := range []string{"confirmed", "in-progress", "completed"} {
		_, err = svc.Booking.UpdateStatus(ctx, providerID, entity.RoleProvider, booking.BookingID,
			&request.UpdateBookingStatusRequest{Status: status})
		require.NoError(t, err)
	}

	// not by the provider
	_, err = svc.Booking.AddFeedback(ctx, providerID, booking.BookingID,
		&request.BookingFeedbackRequest{Rating: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the customer")

	updated, err := svc.Booking.AddFeedback(ctx, customerID, booking.BookingID,
		&request.BookingFeedbackRequest{Rating: 4, Comment: "quick and tidy"})
	require.NoError(t, err)
	require.NotNil(t, updated.Feedback)
	assert.Equal(t, 4, updated.Feedback.Rating)

	// only once
	_, err = svc.Booking.AddFeedback(ctx, customerID, booking.BookingID,
		&request.BookingFeedbackRequest{Rating: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already given")
}

func TestListBookingsByRoleSide(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	stranger := registerUser(t, svc, "Ravi", "ravi@example.com", "")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 200)

	p := &request.PaginatedRequest{Page: 1, PerPage: 10}

	mine, err := svc.Booking.ListBookings(ctx, customerID, entity.RoleCustomer, p)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	assigned, err := svc.Booking.ListBookings(ctx, providerID, entity.RoleProvider, p)
	require.NoError(t, err)
	require.Len(t, assigned, 1)

	none, err := svc.Booking.ListBookings(ctx, mustUUID(t, stranger.User.ID), entity.RoleCustomer, p)
	require.NoError(t, err)
	assert.Empty(t, none)

	// strangers cannot read someone else's booking
	_, err = svc.Booking.GetBooking(ctx, mustUUID(t, stranger.User.ID), entity.RoleCustomer, booking.BookingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}
