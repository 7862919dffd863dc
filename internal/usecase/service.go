package usecase

import (
	"helper-booking/internal/data/repository"
	"helper-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Booking   BookingService
	Wallet    WalletService
	Community CommunityService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Booking:   NewBookingService(repo, log),
		Wallet:    NewWalletService(repo, log),
		Community: NewCommunityService(repo, log),
	}
}
