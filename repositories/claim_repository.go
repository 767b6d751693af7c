package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories/dbmodels"
)

func (r *CrewPayDbRepository) InsertClaim(
	ctx context.Context,
	exec Executor,
	input models.ClaimCreate,
) (models.Claim, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CLAIMS).
		Columns(
			"id",
			"crew_member_id",
			"trip_id",
			"entitlement_type",
			"amount",
			"description",
			"status",
			"auto_generated",
			"detection_method",
			"validation_confidence",
			"validation_reasoning",
		).
		Values(
			input.Id,
			input.CrewMemberId,
			input.TripId,
			input.EntitlementType.String(),
			input.Amount,
			input.Description,
			input.Status.String(),
			input.AutoGenerated,
			input.DetectionMethod,
			input.ValidationConfidence,
			input.ValidationReasoning,
		)

	if err := ExecBuilder(ctx, exec, query); err != nil {
		if isUniqueViolation(err) {
			return models.Claim{}, errors.Wrap(models.ConflictError, "claim id collision")
		}
		return models.Claim{}, err
	}

	return r.GetClaimById(ctx, exec, input.Id)
}

func (r *CrewPayDbRepository) GetClaimById(
	ctx context.Context,
	exec Executor,
	claimId string,
) (models.Claim, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectClaimColumns...).
			From(dbmodels.TABLE_CLAIMS).
			Where(squirrel.Eq{"id": claimId}),
		dbmodels.AdaptClaim,
	)
}

// CountAutoGeneratedClaimsForTrip is the probe behind the idempotency
// property: a trip with a non-zero count is excluded from discovery.
func (r *CrewPayDbRepository) CountAutoGeneratedClaimsForTrip(
	ctx context.Context,
	exec Executor,
	tripId uuid.UUID,
) (int, error) {
	query := NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_CLAIMS).
		Where(squirrel.Eq{"trip_id": tripId, "auto_generated": true})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "error counting auto-generated claims")
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
