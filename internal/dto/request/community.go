package request

type CreateHelpRequestRequest struct {
	Category    string `json:"category" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Location    string `json:"location" validate:"required,max=255"`
	Urgency     string `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high"`
	// nil defaults to public
	IsPublic *bool `json:"is_public,omitempty"`
}

type UpdateHelpStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted in-progress completed cancelled"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
	// Rating the requester leaves when marking a request completed
	Rating int `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type RegisterVolunteerRequest struct {
	Skills          []string `json:"skills" validate:"required,min=1,dive,min=2,max=50"`
	Availability    string   `json:"availability" validate:"required,oneof=weekdays weekends evenings anytime"`
	ServiceRadiusKm int      `json:"service_radius_km" validate:"required,min=1,max=100"`
	Bio             string   `json:"bio,omitempty" validate:"omitempty,max=500"`
}
