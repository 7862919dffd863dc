package usecase

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/repository"
	"helper-booking/internal/dto/request"
	"helper-booking/internal/dto/response"
	"helper-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WalletService interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*response.WalletResponse, error)
	AddMoney(ctx context.Context, userID uuid.UUID, req *request.AddMoneyRequest) (*response.WalletResponse, error)
	RedeemPoints(ctx context.Context, userID uuid.UUID, req *request.RedeemPointsRequest) (*response.WalletResponse, error)
	ApplyReferral(ctx context.Context, userID uuid.UUID, req *request.ApplyReferralRequest) (*response.WalletResponse, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, p *request.PaginatedRequest) ([]*response.TransactionResponse, error)
	GetRewards(ctx context.Context, userID uuid.UUID) (*response.RewardsResponse, error)
	PayBooking(ctx context.Context, userID uuid.UUID, req *request.PayBookingRequest) (*response.WalletResponse, error)
}

type walletService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWalletService(repo *repository.Repository, log *zap.Logger) WalletService {
	return &walletService{
		repo: repo,
		log:  log.With(zap.String("service", "wallet")),
	}
}

// recordTransaction draws the next TXN sequence and appends a ledger
// entry. Shared with the booking service for payouts and rewards.
func recordTransaction(ctx context.Context, repo *repository.Repository, userID uuid.UUID,
	txnType entity.TransactionType, category entity.TransactionCategory,
	amount float64, description, reference string) error {

	seq, err := repo.Counter.Next(ctx, repository.CounterTransactions)
	if err != nil {
		return fmt.Errorf("draw transaction sequence: %w", err)
	}

	now := time.Now()
	txn := &entity.WalletTransaction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		TxnID:       utils.FormatPublicID(utils.TransactionIDPrefix, now, seq),
		UserID:      userID,
		Type:        txnType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Reference:   reference,
	}

	return repo.Wallet.AddTransaction(ctx, txn)
}

// applyReferral links a wallet to its referrer and credits both sides.
// Also used by registration when a code is supplied up front.
func applyReferral(ctx context.Context, repo *repository.Repository, wallet *entity.Wallet, code string) error {
	if wallet.ReferredBy != nil {
		return fmt.Errorf("referral already applied")
	}

	referrer, err := repo.Wallet.FindByReferralCode(ctx, code)
	if err != nil {
		return fmt.Errorf("look up referral code: %w", err)
	}
	if referrer == nil {
		return fmt.Errorf("referral code not found")
	}
	if referrer.UserID == wallet.UserID {
		return fmt.Errorf("cannot use your own referral code")
	}

	wallet.ReferredBy = &referrer.UserID
	wallet.Balance += entity.ReferralBonus
	if err := repo.Wallet.Update(ctx, wallet); err != nil {
		return fmt.Errorf("credit referred wallet: %w", err)
	}

	referrer.Balance += entity.ReferralBonus
	if err := repo.Wallet.Update(ctx, referrer); err != nil {
		return fmt.Errorf("credit referrer wallet: %w", err)
	}

	if err := recordTransaction(ctx, repo, wallet.UserID, entity.TransactionCredit,
		entity.TxnCategoryReferral, entity.ReferralBonus, "Referral bonus", code); err != nil {
		return err
	}
	return recordTransaction(ctx, repo, referrer.UserID, entity.TransactionCredit,
		entity.TxnCategoryReferral, entity.ReferralBonus, "Referral bonus for inviting a friend", code)
}

// getWallet loads the caller's wallet, failing with "not found" when
// the account has none (possible after a store-mode switch)
func (s *walletService) getWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := s.repo.Wallet.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load wallet", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load wallet")
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet not found")
	}
	return wallet, nil
}

func (s *walletService) GetWallet(ctx context.Context, userID uuid.UUID) (*response.WalletResponse, error) {
	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.WalletToResponse(wallet), nil
}

func (s *walletService) AddMoney(ctx context.Context, userID uuid.UUID, req *request.AddMoneyRequest) (*response.WalletResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallet.Balance += req.Amount
	if err := s.repo.Wallet.Update(ctx, wallet); err != nil {
		s.log.Error("Failed to credit wallet", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to add money")
	}

	if err := recordTransaction(ctx, s.repo, userID, entity.TransactionCredit,
		entity.TxnCategoryTopup, req.Amount, "Wallet top-up", ""); err != nil {
		s.log.Error("Failed to record top-up", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to add money")
	}

	s.log.Info("Wallet topped up",
		zap.String("user_id", userID.String()),
		zap.Float64("amount", req.Amount))

	return response.WalletToResponse(wallet), nil
}

func (s *walletService) RedeemPoints(ctx context.Context, userID uuid.UUID, req *request.RedeemPointsRequest) (*response.WalletResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Points > wallet.RewardPoints {
		return nil, fmt.Errorf("insufficient reward points")
	}

	amount := float64(req.Points) * entity.RewardPointValue
	wallet.RewardPoints -= req.Points
	wallet.Balance += amount

	if err := s.repo.Wallet.Update(ctx, wallet); err != nil {
		s.log.Error("Failed to redeem points", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to redeem points")
	}

	if err := recordTransaction(ctx, s.repo, userID, entity.TransactionCredit,
		entity.TxnCategoryRedeem, amount,
		fmt.Sprintf("Redeemed %d reward points", req.Points), ""); err != nil {
		s.log.Error("Failed to record redemption", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to redeem points")
	}

	s.log.Info("Reward points redeemed",
		zap.String("user_id", userID.String()),
		zap.Int("points", req.Points))

	return response.WalletToResponse(wallet), nil
}

func (s *walletService) ApplyReferral(ctx context.Context, userID uuid.UUID, req *request.ApplyReferralRequest) (*response.WalletResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := applyReferral(ctx, s.repo, wallet, req.Code); err != nil {
		s.log.Warn("Referral not applied",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, err
	}

	s.log.Info("Referral applied",
		zap.String("user_id", userID.String()),
		zap.String("code", req.Code))

	return response.WalletToResponse(wallet), nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID uuid.UUID, p *request.PaginatedRequest) ([]*response.TransactionResponse, error) {
	txns, err := s.repo.Wallet.ListTransactions(ctx, userID, p.Limit(), p.Offset())
	if err != nil {
		s.log.Error("Failed to list transactions", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list transactions")
	}

	return response.TransactionsToResponse(txns), nil
}

func (s *walletService) GetRewards(ctx context.Context, userID uuid.UUID) (*response.RewardsResponse, error) {
	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.RewardsToResponse(wallet), nil
}

func (s *walletService) PayBooking(ctx context.Context, userID uuid.UUID, req *request.PayBookingRequest) (*response.WalletResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	if booking.CustomerID != userID {
		return nil, fmt.Errorf("not allowed to pay for this booking")
	}
	if booking.PaymentStatus != entity.PaymentStatusUnpaid {
		return nil, fmt.Errorf("booking is already paid")
	}
	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusRefunded {
		return nil, fmt.Errorf("booking is not payable")
	}

	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wallet.Balance < booking.Amount {
		return nil, fmt.Errorf("insufficient balance")
	}

	wallet.Balance -= booking.Amount
	if err := s.repo.Wallet.Update(ctx, wallet); err != nil {
		s.log.Error("Failed to debit wallet", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to process payment")
	}

	booking.PaymentStatus = entity.PaymentStatusPaid
	booking.PaymentMethod = "wallet"
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to mark booking paid", zap.Error(err), zap.String("booking_id", booking.BookingID))
		return nil, fmt.Errorf("failed to process payment")
	}

	if err := recordTransaction(ctx, s.repo, userID, entity.TransactionDebit,
		entity.TxnCategoryPayment, booking.Amount,
		fmt.Sprintf("Payment for booking %s", booking.BookingID), booking.BookingID); err != nil {
		s.log.Error("Failed to record payment", zap.Error(err), zap.String("booking_id", booking.BookingID))
		return nil, fmt.Errorf("failed to process payment")
	}

	s.log.Info("Booking paid from wallet",
		zap.String("user_id", userID.String()),
		zap.String("booking_id", booking.BookingID),
		zap.Float64("amount", booking.Amount))

	return response.WalletToResponse(wallet), nil
}
