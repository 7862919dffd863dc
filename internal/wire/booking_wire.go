package wire

import (
	"net/http"

	"helper-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth func(http.Handler) http.Handler) {
	// All booking routes require authentication
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{bookingId}", bookingHandler.GetBooking)
		r.Put("/{bookingId}/status", bookingHandler.UpdateStatus)
		r.Post("/{bookingId}/feedback", bookingHandler.AddFeedback)
	})
}
