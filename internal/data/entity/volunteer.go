package entity

import (
	"github.com/google/uuid"
)

type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityAnytime  Availability = "anytime"
)

type VolunteerStats struct {
	CompletedRequests int `bson:"completed_requests"`
	TotalRatings      int `bson:"total_ratings"`
	RatingSum         int `bson:"rating_sum"`
}

// AverageRating is derived at read time, never persisted
func (s VolunteerStats) AverageRating() float64 {
	if s.TotalRatings == 0 {
		return 0
	}
	return float64(s.RatingSum) / float64(s.TotalRatings)
}

// Volunteer is the community profile linked one-to-one with a user
type Volunteer struct {
	Base            `bson:",inline"`
	UserID          uuid.UUID      `bson:"user_id"`
	Skills          []string       `bson:"skills"`
	Availability    Availability   `bson:"availability"`
	ServiceRadiusKm int            `bson:"service_radius_km"`
	Bio             string         `bson:"bio,omitempty"`
	Verified        bool           `bson:"verified"`
	Stats           VolunteerStats `bson:"stats"`
}

func ValidAvailability(a Availability) bool {
	switch a {
	case AvailabilityWeekdays, AvailabilityWeekends, AvailabilityEvenings, AvailabilityAnytime:
		return true
	}
	return false
}

// HasSkill reports whether the volunteer lists the given skill
func (v *Volunteer) HasSkill(skill string) bool {
	for _, s := range v.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
