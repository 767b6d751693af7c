package dto

import (
	"time"

	"github.com/crewledger/crewpay-backend/models"
)

type RunResult struct {
	TripsProcessed      int       `json:"trips_processed"`
	ClaimsDetected      int       `json:"claims_detected"`
	ClaimsApproved      int       `json:"claims_approved"`
	ClaimsReview        int       `json:"claims_review"`
	ClaimsRejected      int       `json:"claims_rejected"`
	TotalApprovedAmount float64   `json:"total_approved_amount"`
	Errors              []string  `json:"errors"`
	StartedAt           time.Time `json:"started_at"`
	FinishedAt          time.Time `json:"finished_at"`
}

func AdaptRunResultDto(result models.RunResult) RunResult {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return RunResult{
		TripsProcessed:      result.TripsProcessed,
		ClaimsDetected:      result.ClaimsDetected,
		ClaimsApproved:      result.ClaimsApproved,
		ClaimsReview:        result.ClaimsReview,
		ClaimsRejected:      result.ClaimsRejected,
		TotalApprovedAmount: result.TotalApprovedAmount,
		Errors:              errs,
		StartedAt:           result.StartedAt,
		FinishedAt:          result.FinishedAt,
	}
}
