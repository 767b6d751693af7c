package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories/dbmodels"
)

// ListUnprocessedCompletedTrips returns completed trips within the recent
// window that do not yet carry an auto-generated claim. This NOT EXISTS
// predicate is the idempotency boundary of the whole pipeline: a trip that
// has been processed once is never discovered again.
func (r *CrewPayDbRepository) ListUnprocessedCompletedTrips(
	ctx context.Context,
	exec Executor,
	since time.Time,
) ([]models.Trip, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectTripColumns...).
		From(dbmodels.TABLE_TRIPS).
		Where(squirrel.Eq{"status": models.TripStatusCompleted.String()}).
		Where(squirrel.GtOrEq{"date": since}).
		Where(fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM %s WHERE %s.trip_id = %s.id AND %s.auto_generated)",
			dbmodels.TABLE_CLAIMS, dbmodels.TABLE_CLAIMS, dbmodels.TABLE_TRIPS, dbmodels.TABLE_CLAIMS,
		)).
		OrderBy("date ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptTrip)
}

func (r *CrewPayDbRepository) InsertTrip(
	ctx context.Context,
	exec Executor,
	input models.TripCreate,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_TRIPS).
		Columns(
			"id",
			"trip_number",
			"date",
			"origin",
			"destination",
			"scheduled_departure",
			"scheduled_arrival",
			"block_hours",
			"flight_time_hours",
			"credit_hours",
			"is_international",
			"crew_member_id",
			"status",
		).
		Values(
			input.Id,
			input.TripNumber,
			input.Date,
			input.Origin,
			input.Destination,
			input.ScheduledDeparture,
			input.ScheduledArrival,
			input.BlockHours,
			input.FlightTimeHours,
			input.CreditHours,
			input.IsInternational,
			input.CrewMemberId,
			input.Status.String(),
		)

	return ExecBuilder(ctx, exec, query)
}

func (r *CrewPayDbRepository) GetTripById(
	ctx context.Context,
	exec Executor,
	tripId uuid.UUID,
) (models.Trip, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTripColumns...).
			From(dbmodels.TABLE_TRIPS).
			Where(squirrel.Eq{"id": tripId}),
		dbmodels.AdaptTrip,
	)
}
