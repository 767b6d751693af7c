package dto

import (
	"time"

	"github.com/crewledger/crewpay-backend/models"
)

type Claim struct {
	Id                   string    `json:"id"`
	CrewMemberId         string    `json:"crew_member_id"`
	TripId               string    `json:"trip_id"`
	EntitlementType      string    `json:"entitlement_type"`
	Amount               float64   `json:"amount"`
	Description          string    `json:"description,omitempty"`
	Status               string    `json:"status"`
	AutoGenerated        bool      `json:"auto_generated"`
	DetectionMethod      string    `json:"detection_method,omitempty"`
	ValidationConfidence int       `json:"validation_confidence"`
	ValidationReasoning  string    `json:"validation_reasoning,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func AdaptClaimDto(claim models.Claim) Claim {
	return Claim{
		Id:                   claim.Id,
		CrewMemberId:         claim.CrewMemberId.String(),
		TripId:               claim.TripId.String(),
		EntitlementType:      claim.EntitlementType.String(),
		Amount:               claim.Amount,
		Description:          claim.Description,
		Status:               claim.Status.String(),
		AutoGenerated:        claim.AutoGenerated,
		DetectionMethod:      claim.DetectionMethod,
		ValidationConfidence: claim.ValidationConfidence,
		ValidationReasoning:  claim.ValidationReasoning,
		CreatedAt:            claim.CreatedAt,
		UpdatedAt:            claim.UpdatedAt,
	}
}
