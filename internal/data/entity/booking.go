package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRefunded   BookingStatus = "refunded"
)

type ServiceType string

const (
	ServicePlumber     ServiceType = "plumber"
	ServiceElectrician ServiceType = "electrician"
	ServiceDoctor      ServiceType = "doctor"
	ServiceCleaner     ServiceType = "cleaner"
	ServiceCarpenter   ServiceType = "carpenter"
	ServiceOther       ServiceType = "other"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type BookingFeedback struct {
	Rating  int       `bson:"rating"`
	Comment string    `bson:"comment,omitempty"`
	GivenAt time.Time `bson:"given_at"`
}

type Booking struct {
	Base          `bson:",inline"`
	BookingID     string           `bson:"booking_id"`
	CustomerID    uuid.UUID        `bson:"customer_id"`
	ProviderID    uuid.UUID        `bson:"provider_id"`
	ServiceType   ServiceType      `bson:"service_type"`
	ScheduledAt   time.Time        `bson:"scheduled_at"`
	Address       string           `bson:"address"`
	Notes         string           `bson:"notes,omitempty"`
	Amount        float64          `bson:"amount"`
	PaymentMethod string           `bson:"payment_method"`
	PaymentStatus PaymentStatus    `bson:"payment_status"`
	Status        BookingStatus    `bson:"status"`
	Feedback      *BookingFeedback `bson:"feedback,omitempty"`
}

// bookingTransitions lists the legal next statuses per current status.
// Anything not listed is rejected at the service boundary.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted:  {BookingStatusRefunded},
	BookingStatusCancelled:  {BookingStatusRefunded},
}

// CanTransitionTo reports whether next is a legal move from s
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// bookingStatusRoles gates who may move a booking into each status.
// Admin is allowed any legal transition and is not listed.
var bookingStatusRoles = map[BookingStatus][]UserRole{
	BookingStatusConfirmed:  {RoleProvider},
	BookingStatusInProgress: {RoleProvider},
	BookingStatusCompleted:  {RoleProvider},
	BookingStatusCancelled:  {RoleCustomer},
	BookingStatusRefunded:   {RoleAdmin},
}

// RoleCanSetBookingStatus reports whether the actor role may move a
// booking into next (transition legality is checked separately)
func RoleCanSetBookingStatus(role UserRole, next BookingStatus) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range bookingStatusRoles[next] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Display returns the human status string shown to clients
func (s BookingStatus) Display() string {
	switch s {
	case BookingStatusPending:
		return "Awaiting confirmation"
	case BookingStatusConfirmed:
		return "Confirmed"
	case BookingStatusInProgress:
		return "Work in progress"
	case BookingStatusCompleted:
		return "Completed"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusRefunded:
		return "Refunded"
	default:
		return string(s)
	}
}

func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServicePlumber, ServiceElectrician, ServiceDoctor,
		ServiceCleaner, ServiceCarpenter, ServiceOther:
		return true
	}
	return false
}
