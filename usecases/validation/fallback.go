package validation

import (
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
)

const (
	fallbackReasoningPrefix = "Fallback validation (AI unavailable)"

	// Claims above this amount never auto-approve without human eyes.
	highValueThreshold     = 1000.0
	highValueMaxConfidence = 85
)

// FallbackValidation is the deterministic, side-effect-free substitute for
// the reasoning service. It derives the verdict from the candidate alone,
// so two calls with the same candidate always agree.
func FallbackValidation(candidate models.CandidateClaim) models.Verdict {
	if candidate.Amount <= 0 {
		return models.Verdict{
			Valid:          false,
			Confidence:     0,
			Recommendation: models.RecommendationReject,
			Reasoning:      fmt.Sprintf("%s: non-positive amount %.2f", fallbackReasoningPrefix, candidate.Amount),
			UsedFallback:   true,
		}
	}

	if candidate.Amount > highValueThreshold {
		confidence := candidate.PriorConfidence
		if confidence > highValueMaxConfidence {
			confidence = highValueMaxConfidence
		}
		return models.Verdict{
			Valid:          true,
			Confidence:     models.ClampConfidence(confidence),
			Recommendation: models.RecommendationManualReview,
			Reasoning: fmt.Sprintf("%s: amount %.2f exceeds the high-value threshold, manual review required",
				fallbackReasoningPrefix, candidate.Amount),
			UsedFallback: true,
		}
	}

	confidence := models.ClampConfidence(candidate.PriorConfidence)
	recommendation := models.RecommendationForConfidence(confidence)

	reasoning := fmt.Sprintf("%s: detector %s reported confidence %d",
		fallbackReasoningPrefix, candidate.DetectionMethod, confidence)
	if confidence < 80 {
		reasoning = fmt.Sprintf("%s: detector %s reported low confidence %d, review with care",
			fallbackReasoningPrefix, candidate.DetectionMethod, confidence)
	}

	return models.Verdict{
		Valid:          true,
		Confidence:     confidence,
		Recommendation: recommendation,
		Reasoning:      reasoning,
		UsedFallback:   true,
	}
}
