package usecase

import (
	"context"
	"testing"
	"time"

	"helper-booking/internal/data/memstore"
	"helper-booking/internal/data/repository"
	"helper-booking/internal/dto/request"
	"helper-booking/internal/dto/response"
	"helper-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	repo := memstore.NewRepository(memstore.New())
	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "unit-test-secret",
			ExpiryHours: 1,
		},
	}
	return NewService(repo, config, zap.NewNop()), repo
}

func registerUser(t *testing.T, svc *Service, name, email, role string) *response.AuthResponse {
	t.Helper()

	auth, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	return auth
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()

	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func createTestBooking(t *testing.T, svc *Service, customerID uuid.UUID, providerID string, amount float64) *response.BookingResponse {
	t.Helper()

	booking, err := svc.Booking.CreateBooking(context.Background(), customerID, &request.CreateBookingRequest{
		ProviderID:    providerID,
		ServiceType:   "plumber",
		ScheduledAt:   time.Now().Add(24 * time.Hour),
		Address:       "12 Canal Street",
		Amount:        amount,
		PaymentMethod: "wallet",
	})
	require.NoError(t, err)
	return booking
}
