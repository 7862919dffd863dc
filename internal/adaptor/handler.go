package adaptor

import (
	"net/http"

	"helper-booking/internal/dto/request"
	"helper-booking/internal/usecase"
	"helper-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Wallet    *WalletHandler
	Community *CommunityHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Wallet:    NewWalletHandler(service.Wallet, log),
		Community: NewCommunityHandler(service.Community, log),
	}
}

// paginationFromQuery reads page/per_page, clamping per_page at 100
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	p := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
	return p
}
