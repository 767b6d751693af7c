package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"
)

type TripStatus int

const (
	TripStatusScheduled TripStatus = iota
	TripStatusInProgress
	TripStatusCompleted
	TripStatusCanceled
	TripStatusUnknown
)

var ValidTripStatuses = []TripStatus{
	TripStatusScheduled,
	TripStatusInProgress,
	TripStatusCompleted,
	TripStatusCanceled,
}

func (s TripStatus) String() string {
	switch s {
	case TripStatusScheduled:
		return "scheduled"
	case TripStatusInProgress:
		return "in_progress"
	case TripStatusCompleted:
		return "completed"
	case TripStatusCanceled:
		return "canceled"
	}
	return "unknown"
}

func TripStatusFrom(s string) TripStatus {
	switch s {
	case "scheduled":
		return TripStatusScheduled
	case "in_progress":
		return TripStatusInProgress
	case "completed":
		return TripStatusCompleted
	case "canceled":
		return TripStatusCanceled
	}
	return TripStatusUnknown
}

// Trip is one completed duty period (flight/pairing), produced by the
// operations system. It is read-only for the entitlement pipeline.
type Trip struct {
	Id                 uuid.UUID
	TripNumber         string
	Date               time.Time
	Origin             string
	Destination        string
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	ActualDeparture    null.Time
	ActualArrival      null.Time
	BlockHours         float64
	FlightTimeHours    float64
	CreditHours        float64
	IsInternational    bool
	CrewMemberId       uuid.UUID
	Status             TripStatus
	CreatedAt          time.Time
}

// TripCreate is used by the dev seeder and by operations imports. The
// entitlement pipeline itself never writes trips.
type TripCreate struct {
	Id                 uuid.UUID
	TripNumber         string
	Date               time.Time
	Origin             string
	Destination        string
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	BlockHours         float64
	FlightTimeHours    float64
	CreditHours        float64
	IsInternational    bool
	CrewMemberId       uuid.UUID
	Status             TripStatus
}
