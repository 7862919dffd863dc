package usecase

import (
	"context"
	"strings"
	"testing"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMoneyRecordsTransaction(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	auth := registerUser(t, svc, "Asha", "asha@example.com", "")
	userID := mustUUID(t, auth.User.ID)

	wallet, err := svc.Wallet.AddMoney(ctx, userID, &request.AddMoneyRequest{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, 250.0, wallet.Balance)

	txns, err := svc.Wallet.ListTransactions(ctx, userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, strings.HasPrefix(txns[0].TxnID, "TXN-"))
	assert.Equal(t, entity.TransactionCredit, txns[0].Type)
	assert.Equal(t, entity.TxnCategoryTopup, txns[0].Category)
	assert.Equal(t, 250.0, txns[0].SignedAmount)
}

func TestTransactionsListedNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	auth := registerUser(t, svc, "Asha", "asha@example.com", "")
	userID := mustUUID(t, auth.User.ID)

	_, err := svc.Wallet.AddMoney(ctx, userID, &request.AddMoneyRequest{Amount: 100})
	require.NoError(t, err)
	_, err = svc.Wallet.AddMoney(ctx, userID, &request.AddMoneyRequest{Amount: 200})
	require.NoError(t, err)

	txns, err := svc.Wallet.ListTransactions(ctx, userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, 200.0, txns[0].Amount)
	assert.Equal(t, 100.0, txns[1].Amount)
}

func TestRedeemPoints(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	auth := registerUser(t, svc, "Asha", "asha@example.com", "")
	userID := mustUUID(t, auth.User.ID)

	// nothing earned yet
	_, err := svc.Wallet.RedeemPoints(ctx, userID, &request.RedeemPointsRequest{Points: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient reward points")

	wallet, err := repo.Wallet.FindByUserID(ctx, userID)
	require.NoError(t, err)
	wallet.RewardPoints = 30
	require.NoError(t, repo.Wallet.Update(ctx, wallet))

	redeemed, err := svc.Wallet.RedeemPoints(ctx, userID, &request.RedeemPointsRequest{Points: 10})
	require.NoError(t, err)
	assert.Equal(t, 10.0, redeemed.Balance)
	assert.Equal(t, 20, redeemed.RewardPoints)

	rewards, err := svc.Wallet.GetRewards(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 20, rewards.Points)
	assert.Equal(t, 20.0, rewards.RedeemableAmount)
}

func TestApplyReferral(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	referrer := registerUser(t, svc, "Asha", "asha@example.com", "")
	referred := registerUser(t, svc, "Ravi", "ravi@example.com", "")
	referrerID := mustUUID(t, referrer.User.ID)
	referredID := mustUUID(t, referred.User.ID)

	referrerWallet, err := repo.Wallet.FindByUserID(ctx, referrerID)
	require.NoError(t, err)

	// own code is rejected
	_, err = svc.Wallet.ApplyReferral(ctx, referrerID, &request.ApplyReferralRequest{Code: referrerWallet.ReferralCode})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own referral code")

	updated, err := svc.Wallet.ApplyReferral(ctx, referredID, &request.ApplyReferralRequest{Code: referrerWallet.ReferralCode})
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralBonus, updated.Balance)

	referrerWallet, err = repo.Wallet.FindByUserID(ctx, referrerID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralBonus, referrerWallet.Balance)

	// both sides got a ledger entry
	txns, err := svc.Wallet.ListTransactions(ctx, referrerID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TxnCategoryReferral, txns[0].Category)

	// a second application is refused
	_, err = svc.Wallet.ApplyReferral(ctx, referredID, &request.ApplyReferralRequest{Code: referrerWallet.ReferralCode})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already applied")

	// unknown code
	_, err = svc.Wallet.ApplyReferral(ctx, referrerID, &request.ApplyReferralRequest{Code: "ZZZZ9999"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPayBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)
	providerID := mustUUID(t, provider.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 300)

	// empty wallet
	_, err := svc.Wallet.PayBooking(ctx, customerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")

	_, err = svc.Wallet.AddMoney(ctx, customerID, &request.AddMoneyRequest{Amount: 400})
	require.NoError(t, err)

	// only the customer pays
	_, err = svc.Wallet.PayBooking(ctx, providerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")

	wallet, err := svc.Wallet.PayBooking(ctx, customerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.NoError(t, err)
	assert.Equal(t, 100.0, wallet.Balance)

	paid, err := svc.Booking.GetBooking(ctx, customerID, entity.RoleCustomer, booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, paid.PaymentStatus)

	// no double payment
	_, err = svc.Wallet.PayBooking(ctx, customerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")
}

func TestPayBookingRejectsCancelled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer := registerUser(t, svc, "Asha", "asha@example.com", "")
	provider := registerUser(t, svc, "Plumb Co", "plumb@example.com", "provider")
	customerID := mustUUID(t, customer.User.ID)

	booking := createTestBooking(t, svc, customerID, provider.User.ID, 300)

	_, err := svc.Wallet.AddMoney(ctx, customerID, &request.AddMoneyRequest{Amount: 400})
	require.NoError(t, err)

	_, err = svc.Booking.UpdateStatus(ctx, customerID, entity.RoleCustomer, booking.BookingID,
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	_, err = svc.Wallet.PayBooking(ctx, customerID, &request.PayBookingRequest{BookingID: booking.BookingID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not payable")
}
