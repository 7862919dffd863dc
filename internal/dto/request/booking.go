package request

import "time"

type CreateBookingRequest struct {
	ProviderID    string    `json:"provider_id" validate:"required,uuid4"`
	ServiceType   string    `json:"service_type" validate:"required,oneof=plumber electrician doctor cleaner carpenter other"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
	Address       string    `json:"address" validate:"required,max=255"`
	Notes         string    `json:"notes,omitempty" validate:"omitempty,max=500"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=wallet cash"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in-progress completed cancelled refunded"`
}

type BookingFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
