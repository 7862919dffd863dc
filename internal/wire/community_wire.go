package wire

import (
	"net/http"

	"helper-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCommunity(r chi.Router, communityHandler *adaptor.CommunityHandler, auth func(http.Handler) http.Handler) {
	// All community routes require authentication
	r.Route("/api/community", func(r chi.Router) {
		r.Use(auth)

		r.Post("/requests", communityHandler.CreateRequest)
		r.Get("/requests", communityHandler.ListRequests)
		r.Get("/requests/{requestId}", communityHandler.GetRequest)
		r.Put("/requests/{requestId}/status", communityHandler.UpdateStatus)

		r.Post("/volunteers", communityHandler.RegisterVolunteer)
		r.Get("/volunteers", communityHandler.ListVolunteers)
		r.Get("/volunteers/me", communityHandler.MyVolunteerProfile)
	})
}
