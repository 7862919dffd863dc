package wire

import (
	"net/http"

	"helper-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWallet(r chi.Router, walletHandler *adaptor.WalletHandler, auth func(http.Handler) http.Handler) {
	// All wallet routes require authentication
	r.Route("/api/wallet", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", walletHandler.GetWallet)
		r.Post("/add", walletHandler.AddMoney)
		r.Post("/redeem", walletHandler.RedeemPoints)
		r.Post("/referral", walletHandler.ApplyReferral)
		r.Get("/transactions", walletHandler.ListTransactions)
		r.Get("/rewards", walletHandler.GetRewards)
		r.Post("/pay", walletHandler.PayBooking)
	})
}
