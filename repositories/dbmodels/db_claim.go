package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/crewledger/crewpay-backend/models"
)

const TABLE_CLAIMS = "claims"

type DbClaim struct {
	Id                   string    `db:"id"`
	CrewMemberId         uuid.UUID `db:"crew_member_id"`
	TripId               uuid.UUID `db:"trip_id"`
	EntitlementType      string    `db:"entitlement_type"`
	Amount               float64   `db:"amount"`
	Description          string    `db:"description"`
	Status               string    `db:"status"`
	AutoGenerated        bool      `db:"auto_generated"`
	DetectionMethod      string    `db:"detection_method"`
	ValidationConfidence int       `db:"validation_confidence"`
	ValidationReasoning  string    `db:"validation_reasoning"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

var SelectClaimColumns = []string{
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
	"created_at",
	"updated_at",
}

func AdaptClaim(db DbClaim) (models.Claim, error) {
	return models.Claim{
		Id:                   db.Id,
		CrewMemberId:         db.CrewMemberId,
		TripId:               db.TripId,
		EntitlementType:      models.EntitlementTypeFrom(db.EntitlementType),
		Amount:               db.Amount,
		Description:          db.Description,
		Status:               models.ClaimStatusFrom(db.Status),
		AutoGenerated:        db.AutoGenerated,
		DetectionMethod:      db.DetectionMethod,
		ValidationConfidence: db.ValidationConfidence,
		ValidationReasoning:  db.ValidationReasoning,
		CreatedAt:            db.CreatedAt,
		UpdatedAt:            db.UpdatedAt,
	}, nil
}
