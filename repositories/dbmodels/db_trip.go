package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/crewledger/crewpay-backend/models"
)

const TABLE_TRIPS = "trips"

type DbTrip struct {
	Id                 uuid.UUID `db:"id"`
	TripNumber         string    `db:"trip_number"`
	Date               time.Time `db:"date"`
	Origin             string    `db:"origin"`
	Destination        string    `db:"destination"`
	ScheduledDeparture time.Time `db:"scheduled_departure"`
	ScheduledArrival   time.Time `db:"scheduled_arrival"`
	ActualDeparture    null.Time `db:"actual_departure"`
	ActualArrival      null.Time `db:"actual_arrival"`
	BlockHours         float64   `db:"block_hours"`
	FlightTimeHours    float64   `db:"flight_time_hours"`
	CreditHours        float64   `db:"credit_hours"`
	IsInternational    bool      `db:"is_international"`
	CrewMemberId       uuid.UUID `db:"crew_member_id"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
}

var SelectTripColumns = []string{
	"id",
	"trip_number",
	"date",
	"origin",
	"destination",
	"scheduled_departure",
	"scheduled_arrival",
	"actual_departure",
	"actual_arrival",
	"block_hours",
	"flight_time_hours",
	"credit_hours",
	"is_international",
	"crew_member_id",
	"status",
	"created_at",
}

func AdaptTrip(db DbTrip) (models.Trip, error) {
	return models.Trip{
		Id:                 db.Id,
		TripNumber:         db.TripNumber,
		Date:               db.Date,
		Origin:             db.Origin,
		Destination:        db.Destination,
		ScheduledDeparture: db.ScheduledDeparture,
		ScheduledArrival:   db.ScheduledArrival,
		ActualDeparture:    db.ActualDeparture,
		ActualArrival:      db.ActualArrival,
		BlockHours:         db.BlockHours,
		FlightTimeHours:    db.FlightTimeHours,
		CreditHours:        db.CreditHours,
		IsInternational:    db.IsInternational,
		CrewMemberId:       db.CrewMemberId,
		Status:             models.TripStatusFrom(db.Status),
		CreatedAt:          db.CreatedAt,
	}, nil
}
