package response

import (
	"time"

	"helper-booking/internal/data/entity"
)

type FeedbackResponse struct {
	Rating  int       `json:"rating"`
	Comment string    `json:"comment,omitempty"`
	GivenAt time.Time `json:"given_at"`
}

type BookingResponse struct {
	ID            string                `json:"id"`
	BookingID     string                `json:"booking_id"`
	CustomerID    string                `json:"customer_id"`
	ProviderID    string                `json:"provider_id"`
	ServiceType   entity.ServiceType    `json:"service_type"`
	ScheduledAt   time.Time             `json:"scheduled_at"`
	Address       string                `json:"address"`
	Notes         string                `json:"notes,omitempty"`
	Amount        float64               `json:"amount"`
	PaymentMethod string                `json:"payment_method"`
	PaymentStatus entity.PaymentStatus  `json:"payment_status"`
	Status        entity.BookingStatus  `json:"status"`
	StatusDisplay string                `json:"status_display"`
	Feedback      *FeedbackResponse     `json:"feedback,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// Helper converter
func BookingToResponse(booking *entity.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            booking.ID.String(),
		BookingID:     booking.BookingID,
		CustomerID:    booking.CustomerID.String(),
		ProviderID:    booking.ProviderID.String(),
		ServiceType:   booking.ServiceType,
		ScheduledAt:   booking.ScheduledAt,
		Address:       booking.Address,
		Notes:         booking.Notes,
		Amount:        booking.Amount,
		PaymentMethod: booking.PaymentMethod,
		PaymentStatus: booking.PaymentStatus,
		Status:        booking.Status,
		StatusDisplay: booking.Status.Display(),
		CreatedAt:     booking.CreatedAt,
	}

	if booking.Feedback != nil {
		resp.Feedback = &FeedbackResponse{
			Rating:  booking.Feedback.Rating,
			Comment: booking.Feedback.Comment,
			GivenAt: booking.Feedback.GivenAt,
		}
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
