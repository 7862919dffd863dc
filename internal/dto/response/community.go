package response

import (
	"time"

	"helper-booking/internal/data/entity"
)

type TrackingEntryResponse struct {
	Status    entity.HelpStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Note      string            `json:"note,omitempty"`
	ActorRole entity.UserRole   `json:"actor_role"`
}

type HelpRequestResponse struct {
	ID            string                  `json:"id"`
	RequestID     string                  `json:"request_id"`
	RequesterID   string                  `json:"requester_id"`
	VolunteerID   *string                 `json:"volunteer_id,omitempty"`
	Category      string                  `json:"category"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description,omitempty"`
	Location      string                  `json:"location"`
	Urgency       entity.Urgency          `json:"urgency"`
	IsPublic      bool                    `json:"is_public"`
	Status        entity.HelpStatus       `json:"status"`
	StatusDisplay string                  `json:"status_display"`
	Tracking      []TrackingEntryResponse `json:"tracking"`
	CreatedAt     time.Time               `json:"created_at"`
}

type VolunteerResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	Skills            []string            `json:"skills"`
	Availability      entity.Availability `json:"availability"`
	ServiceRadiusKm   int                 `json:"service_radius_km"`
	Bio               string              `json:"bio,omitempty"`
	Verified          bool                `json:"verified"`
	CompletedRequests int                 `json:"completed_requests"`
	AverageRating     float64             `json:"average_rating"`
	CreatedAt         time.Time           `json:"created_at"`
}

// Helper converters
func HelpRequestToResponse(request *entity.HelpRequest) *HelpRequestResponse {
	resp := &HelpRequestResponse{
		ID:            request.ID.String(),
		RequestID:     request.RequestID,
		RequesterID:   request.RequesterID.String(),
		Category:      request.Category,
		Title:         request.Title,
		Description:   request.Description,
		Location:      request.Location,
		Urgency:       request.Urgency,
		IsPublic:      request.IsPublic,
		Status:        request.Status,
		StatusDisplay: request.Status.Display(),
		CreatedAt:     request.CreatedAt,
	}

	if request.VolunteerID != nil {
		vid := request.VolunteerID.String()
		resp.VolunteerID = &vid
	}

	resp.Tracking = make([]TrackingEntryResponse, 0, len(request.Tracking))
	for _, entry := range request.Tracking {
		resp.Tracking = append(resp.Tracking, TrackingEntryResponse{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
			ActorRole: entry.ActorRole,
		})
	}

	return resp
}

func HelpRequestsToResponse(requests []*entity.HelpRequest) []*HelpRequestResponse {
	out := make([]*HelpRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, HelpRequestToResponse(r))
	}
	return out
}

func VolunteerToResponse(volunteer *entity.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:                volunteer.ID.String(),
		UserID:            volunteer.UserID.String(),
		Skills:            volunteer.Skills,
		Availability:      volunteer.Availability,
		ServiceRadiusKm:   volunteer.ServiceRadiusKm,
		Bio:               volunteer.Bio,
		Verified:          volunteer.Verified,
		CompletedRequests: volunteer.Stats.CompletedRequests,
		AverageRating:     volunteer.Stats.AverageRating(),
		CreatedAt:         volunteer.CreatedAt,
	}
}

func VolunteersToResponse(volunteers []*entity.Volunteer) []*VolunteerResponse {
	out := make([]*VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, VolunteerToResponse(v))
	}
	return out
}
