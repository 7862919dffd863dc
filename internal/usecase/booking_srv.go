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

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, userID uuid.UUID, role entity.UserRole, p *request.PaginatedRequest) ([]*response.BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	AddFeedback(ctx context.Context, userID uuid.UUID, bookingID string, req *request.BookingFeedbackRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s: %w", req.ProviderID, err)
	}

	if providerID == userID {
		return nil, fmt.Errorf("cannot book your own services")
	}

	// The provider must exist and actually offer services
	provider, err := s.repo.User.FindByID(ctx, providerID)
	if err != nil {
		s.log.Error("Failed to check provider", zap.Error(err), zap.String("provider_id", req.ProviderID))
		return nil, fmt.Errorf("failed to check provider")
	}
	if provider == nil || provider.Role != entity.RoleProvider {
		return nil, fmt.Errorf("provider %s not found", req.ProviderID)
	}
	if !provider.IsActive {
		return nil, fmt.Errorf("provider is not accepting bookings")
	}

	if req.ScheduledAt.Before(time.Now()) {
		return nil, fmt.Errorf("cannot book for a past time")
	}

	// Public id is assigned exactly once, from the store's atomic
	// counter, before the first save
	seq, err := s.repo.Counter.Next(ctx, repository.CounterBookings)
	if err != nil {
		s.log.Error("Failed to draw booking sequence", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     utils.FormatPublicID(utils.BookingIDPrefix, now, seq),
		CustomerID:    userID,
		ProviderID:    providerID,
		ServiceType:   entity.ServiceType(req.ServiceType),
		ScheduledAt:   req.ScheduledAt,
		Address:       req.Address,
		Notes:         req.Notes,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("booking_id", booking.BookingID))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("customer_id", userID.String()),
		zap.String("provider_id", providerID.String()))

	return response.BookingToResponse(booking), nil
}

// ListBookings returns the caller's side of the marketplace: providers
// see bookings assigned to them, everyone else sees their own orders
func (s *bookingService) ListBookings(ctx context.Context, userID uuid.UUID, role entity.UserRole, p *request.PaginatedRequest) ([]*response.BookingResponse, error) {
	var bookings []*entity.Booking
	var err error

	if role == entity.RoleProvider {
		bookings, err = s.repo.Booking.ListByProvider(ctx, userID, p.Limit(), p.Offset())
	} else {
		bookings, err = s.repo.Booking.ListByCustomer(ctx, userID, p.Limit(), p.Offset())
	}
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findAuthorized(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}
	return response.BookingToResponse(booking), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findAuthorized(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}

	next := entity.BookingStatus(req.Status)

	// The actor's role on this booking decides what they may set; the
	// claimed role only matters for admins
	actorRole := s.actorRole(booking, userID, role)
	if !entity.RoleCanSetBookingStatus(actorRole, next) {
		return nil, fmt.Errorf("role %s not allowed to set status %s", actorRole, next)
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("illegal status transition from %s to %s", booking.Status, next)
	}

	prev := booking.Status
	booking.Status = next

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update booking")
	}

	// Money movements tied to terminal transitions
	switch next {
	case entity.BookingStatusCompleted:
		s.settleCompletion(ctx, booking)
	case entity.BookingStatusRefunded:
		s.settleRefund(ctx, booking)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
		zap.String("actor", userID.String()))

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) AddFeedback(ctx context.Context, userID uuid.UUID, bookingID string, req *request.BookingFeedbackRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.CustomerID != userID {
		return nil, fmt.Errorf("only the customer can leave feedback")
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("feedback is only allowed on completed bookings")
	}
	if booking.Feedback != nil {
		return nil, fmt.Errorf("feedback already given")
	}

	booking.Feedback = &entity.BookingFeedback{
		Rating:  req.Rating,
		Comment: req.Comment,
		GivenAt: time.Now(),
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to save feedback", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to save feedback")
	}

	s.log.Info("Feedback recorded",
		zap.String("booking_id", bookingID),
		zap.Int("rating", req.Rating))

	return response.BookingToResponse(booking), nil
}

// findAuthorized loads a booking and checks the caller is a party to
// it (or an admin)
func (s *bookingService) findAuthorized(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.CustomerID != userID && booking.ProviderID != userID && role != entity.RoleAdmin {
		return nil, fmt.Errorf("not allowed to access this booking")
	}

	return booking, nil
}

// actorRole maps the caller to their role on this specific booking
func (s *bookingService) actorRole(booking *entity.Booking, userID uuid.UUID, claimed entity.UserRole) entity.UserRole {
	if claimed == entity.RoleAdmin {
		return entity.RoleAdmin
	}
	if booking.ProviderID == userID {
		return entity.RoleProvider
	}
	if booking.CustomerID == userID {
		return entity.RoleCustomer
	}
	return claimed
}

// settleCompletion pays the provider out of a paid booking and awards
// the customer reward points. Settlement failures are logged, not
// surfaced: the status change itself already happened.
func (s *bookingService) settleCompletion(ctx context.Context, booking *entity.Booking) {
	if booking.PaymentStatus != entity.PaymentStatusPaid {
		return
	}

	providerWallet, err := s.repo.Wallet.FindByUserID(ctx, booking.ProviderID)
	if err == nil && providerWallet != nil {
		providerWallet.Balance += booking.Amount
		if err := s.repo.Wallet.Update(ctx, providerWallet); err == nil {
			if err := recordTransaction(ctx, s.repo, booking.ProviderID, entity.TransactionCredit,
				entity.TxnCategoryPayout, booking.Amount,
				fmt.Sprintf("Payout for booking %s", booking.BookingID), booking.BookingID); err != nil {
				s.log.Error("Failed to record payout", zap.Error(err), zap.String("booking_id", booking.BookingID))
			}
		} else {
			s.log.Error("Failed to credit provider", zap.Error(err), zap.String("booking_id", booking.BookingID))
		}
	} else if err != nil {
		s.log.Error("Failed to load provider wallet", zap.Error(err), zap.String("booking_id", booking.BookingID))
	}

	points := int(booking.Amount / entity.RewardEarnDivisor)
	if points <= 0 {
		return
	}

	customerWallet, err := s.repo.Wallet.FindByUserID(ctx, booking.CustomerID)
	if err != nil || customerWallet == nil {
		if err != nil {
			s.log.Error("Failed to load customer wallet", zap.Error(err), zap.String("booking_id", booking.BookingID))
		}
		return
	}

	customerWallet.RewardPoints += points
	if err := s.repo.Wallet.Update(ctx, customerWallet); err != nil {
		s.log.Error("Failed to award reward points", zap.Error(err), zap.String("booking_id", booking.BookingID))
		return
	}

	if err := recordTransaction(ctx, s.repo, booking.CustomerID, entity.TransactionCredit,
		entity.TxnCategoryReward, float64(points),
		fmt.Sprintf("Reward points for booking %s", booking.BookingID), booking.BookingID); err != nil {
		s.log.Error("Failed to record reward", zap.Error(err), zap.String("booking_id", booking.BookingID))
	}
}

// settleRefund returns a paid amount to the customer
func (s *bookingService) settleRefund(ctx context.Context, booking *entity.Booking) {
	if booking.PaymentStatus != entity.PaymentStatusPaid {
		return
	}

	wallet, err := s.repo.Wallet.FindByUserID(ctx, booking.CustomerID)
	if err != nil || wallet == nil {
		if err != nil {
			s.log.Error("Failed to load customer wallet", zap.Error(err), zap.String("booking_id", booking.BookingID))
		}
		return
	}

	wallet.Balance += booking.Amount
	if err := s.repo.Wallet.Update(ctx, wallet); err != nil {
		s.log.Error("Failed to refund customer", zap.Error(err), zap.String("booking_id", booking.BookingID))
		return
	}

	booking.PaymentStatus = entity.PaymentStatusRefunded
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to mark booking refunded", zap.Error(err), zap.String("booking_id", booking.BookingID))
	}

	if err := recordTransaction(ctx, s.repo, booking.CustomerID, entity.TransactionCredit,
		entity.TxnCategoryPayment, booking.Amount,
		fmt.Sprintf("Refund for booking %s", booking.BookingID), booking.BookingID); err != nil {
		s.log.Error("Failed to record refund", zap.Error(err), zap.String("booking_id", booking.BookingID))
	}
}
