package entity

import (
	"time"

	"github.com/google/uuid"
)

type HelpStatus string

const (
	HelpStatusPending    HelpStatus = "pending"
	HelpStatusAccepted   HelpStatus = "accepted"
	HelpStatusInProgress HelpStatus = "in-progress"
	HelpStatusCompleted  HelpStatus = "completed"
	HelpStatusCancelled  HelpStatus = "cancelled"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// TrackingEntry is one line of the append-only status history kept on
// every help request. Entries are never edited or removed.
type TrackingEntry struct {
	Status    HelpStatus `bson:"status"`
	Timestamp time.Time  `bson:"timestamp"`
	Note      string     `bson:"note,omitempty"`
	ActorRole UserRole   `bson:"actor_role"`
}

type HelpRequest struct {
	Base        `bson:",inline"`
	RequestID   string          `bson:"request_id"`
	RequesterID uuid.UUID       `bson:"requester_id"`
	VolunteerID *uuid.UUID      `bson:"volunteer_id,omitempty"`
	Category    string          `bson:"category"`
	Title       string          `bson:"title"`
	Description string          `bson:"description"`
	Location    string          `bson:"location"`
	Urgency     Urgency         `bson:"urgency"`
	IsPublic    bool            `bson:"is_public"`
	Status      HelpStatus      `bson:"status"`
	Tracking    []TrackingEntry `bson:"tracking"`
}

var helpTransitions = map[HelpStatus][]HelpStatus{
	HelpStatusPending:    {HelpStatusAccepted, HelpStatusCancelled},
	HelpStatusAccepted:   {HelpStatusInProgress, HelpStatusCancelled},
	HelpStatusInProgress: {HelpStatusCompleted, HelpStatusCancelled},
}

func (s HelpStatus) CanTransitionTo(next HelpStatus) bool {
	for _, allowed := range helpTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// helpStatusRoles gates who may move a request into each status.
// Admin may perform any legal transition.
var helpStatusRoles = map[HelpStatus][]UserRole{
	HelpStatusAccepted:   {RoleVolunteer},
	HelpStatusInProgress: {RoleVolunteer},
	HelpStatusCompleted:  {RoleVolunteer, RoleCustomer},
	HelpStatusCancelled:  {RoleCustomer, RoleVolunteer},
}

func RoleCanSetHelpStatus(role UserRole, next HelpStatus) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range helpStatusRoles[next] {
		if allowed == role {
			return true
		}
	}
	return false
}

func (s HelpStatus) Display() string {
	switch s {
	case HelpStatusPending:
		return "Waiting for a volunteer"
	case HelpStatusAccepted:
		return "Volunteer assigned"
	case HelpStatusInProgress:
		return "Help in progress"
	case HelpStatusCompleted:
		return "Completed"
	case HelpStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

func ValidUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
