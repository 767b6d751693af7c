package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/crewledger/crewpay-backend/models"
)

func candidate(amount float64, prior int) models.CandidateClaim {
	return models.CandidateClaim{
		CrewMemberId:    uuid.New(),
		EntitlementType: models.EntitlementPerDiem,
		TripId:          uuid.New(),
		Amount:          amount,
		DetectionMethod: "per_diem_tafb",
		PriorConfidence: prior,
	}
}

func TestFallbackValidation_nonPositiveAmount(t *testing.T) {
	verdict := FallbackValidation(candidate(0, 92))

	assert.False(t, verdict.Valid)
	assert.Equal(t, 0, verdict.Confidence)
	assert.Equal(t, models.RecommendationReject, verdict.Recommendation)
	assert.True(t, verdict.UsedFallback)
	assert.Contains(t, verdict.Reasoning, fallbackReasoningPrefix)
}

func TestFallbackValidation_highValueCapsConfidence(t *testing.T) {
	verdict := FallbackValidation(candidate(1500, 99))

	assert.True(t, verdict.Valid)
	assert.Equal(t, 85, verdict.Confidence)
	assert.Equal(t, models.RecommendationManualReview, verdict.Recommendation)
	assert.True(t, verdict.UsedFallback)
}

func TestFallbackValidation_highValueKeepsLowerPrior(t *testing.T) {
	verdict := FallbackValidation(candidate(1200, 70))

	assert.Equal(t, 70, verdict.Confidence)
	assert.Equal(t, models.RecommendationManualReview, verdict.Recommendation)
}

func TestFallbackValidation_highPriorAutoApproves(t *testing.T) {
	verdict := FallbackValidation(candidate(325, 97))

	assert.True(t, verdict.Valid)
	assert.Equal(t, 97, verdict.Confidence)
	assert.Equal(t, models.RecommendationAutoApprove, verdict.Recommendation)
	assert.True(t, verdict.UsedFallback)
	assert.Contains(t, verdict.Reasoning, "Fallback validation (AI unavailable)")
}

func TestFallbackValidation_midPriorGoesToReview(t *testing.T) {
	verdict := FallbackValidation(candidate(100, 88))

	assert.True(t, verdict.Valid)
	assert.Equal(t, 88, verdict.Confidence)
	assert.Equal(t, models.RecommendationManualReview, verdict.Recommendation)
}

func TestFallbackValidation_isDeterministic(t *testing.T) {
	c := candidate(240.5, 92)

	first := FallbackValidation(c)
	second := FallbackValidation(c)

	assert.Equal(t, first, second)
}
