package validation

import (
	"context"

	"github.com/crewledger/crewpay-backend/models"
)

// ValidateMany validates candidates one by one, in order, and returns one
// verdict per candidate. A candidate whose validation degrades to fallback
// never affects its neighbours. Sequential on purpose: throughput is bounded
// by the reasoning service round trip, and the caller owns any parallelism.
func (v Validator) ValidateMany(
	ctx context.Context,
	candidates []models.CandidateClaim,
	trip models.Trip,
) ([]models.CandidateVerdict, models.BatchStats) {
	results := make([]models.CandidateVerdict, 0, len(candidates))
	stats := models.BatchStats{Total: len(candidates)}

	confidenceSum := 0
	for _, candidate := range candidates {
		verdict := v.Validate(ctx, candidate, trip)
		results = append(results, models.CandidateVerdict{
			Candidate: candidate,
			Verdict:   verdict,
		})

		confidenceSum += verdict.Confidence
		if verdict.Valid {
			stats.Valid++
		}
		if verdict.Recommendation == models.RecommendationAutoApprove {
			stats.AutoApproved++
		}
		if verdict.UsedFallback {
			stats.FallbackCount++
		}
	}

	if stats.Total > 0 {
		stats.MeanConfidence = float64(confidenceSum) / float64(stats.Total)
	}
	return results, stats
}
