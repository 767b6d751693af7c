package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewledger/crewpay-backend/models"
)

const (
	// Claims older than this are paid through the retroactive adjustment
	// process instead of the standard review path.
	staleClaimAge = 90 * 24 * time.Hour

	// Auto-generated claims validated below this confidence are always
	// flagged for a human, whatever the other checks say.
	minimumTrustedConfidence = 50
)

// maxAmountByEntitlement bounds what a single claim of each type can
// plausibly be worth. Amounts above the bound are flagged, not rejected: long
// international pairings do legitimately exceed the usual range.
var maxAmountByEntitlement = map[models.EntitlementType]float64{
	models.EntitlementPerDiem:               500,
	models.EntitlementInternationalOverride: 1500,
	models.EntitlementExtendedDutyPremium:   2000,
	models.EntitlementHolidayPremium:        3000,
}

// checkEligibilityTiming verifies the claim is attributable and recent enough
// for the standard review path.
func checkEligibilityTiming(ctx context.Context, claim models.Claim) models.AgentResult {
	if claim.CrewMemberId == uuid.Nil || claim.TripId == uuid.Nil {
		return models.AgentResult{
			Status:     models.AgentStatusError,
			Confidence: 0,
			Summary:    "claim is missing its crew member or trip reference",
			Issues:     []string{"unattributable claim, cannot establish eligibility"},
		}
	}

	issues := []string{}
	if claim.EntitlementType == models.EntitlementUnknown {
		issues = append(issues, "unrecognized entitlement type")
	}
	if !claim.CreatedAt.IsZero() && time.Since(claim.CreatedAt) > staleClaimAge {
		issues = append(issues, fmt.Sprintf("claim created on %s exceeds the standard review window",
			claim.CreatedAt.Format("2006-01-02")))
	}

	if len(issues) > 0 {
		return models.AgentResult{
			Status:     models.AgentStatusFlagged,
			Confidence: 0.5,
			Summary:    "eligibility concerns found",
			Issues:     issues,
		}
	}
	return models.AgentResult{
		Status:     models.AgentStatusApproved,
		Confidence: 0.95,
		Summary:    "claim is attributable and within the review window",
	}
}

// checkMonetaryAmount validates the amount against the per-entitlement
// plausibility bounds.
func checkMonetaryAmount(ctx context.Context, claim models.Claim) models.AgentResult {
	if claim.Amount <= 0 {
		return models.AgentResult{
			Status:     models.AgentStatusError,
			Confidence: 0,
			Summary:    "non-positive claim amount",
			Issues:     []string{fmt.Sprintf("amount %.2f is not payable", claim.Amount)},
		}
	}

	if max, ok := maxAmountByEntitlement[claim.EntitlementType]; ok && claim.Amount > max {
		return models.AgentResult{
			Status:     models.AgentStatusFlagged,
			Confidence: 0.55,
			Summary:    "amount outside the usual range for this entitlement",
			Issues: []string{fmt.Sprintf("amount %.2f exceeds the %.2f plausibility bound for %s",
				claim.Amount, max, claim.EntitlementType)},
		}
	}

	return models.AgentResult{
		Status:     models.AgentStatusApproved,
		Confidence: 0.9,
		Summary:    fmt.Sprintf("amount %.2f is within the expected range", claim.Amount),
	}
}

// checkPolicyCompliance re-applies the confidence-to-action mapping used at
// claim creation, this time over the persisted validation confidence.
func checkPolicyCompliance(ctx context.Context, claim models.Claim) models.AgentResult {
	if claim.AutoGenerated && claim.ValidationConfidence < minimumTrustedConfidence {
		return models.AgentResult{
			Status:     models.AgentStatusFlagged,
			Confidence: float64(claim.ValidationConfidence) / 100,
			Summary:    "auto-generated claim with low validation confidence",
			Issues: []string{fmt.Sprintf("validation confidence %d is below the trust floor of %d",
				claim.ValidationConfidence, minimumTrustedConfidence)},
		}
	}

	if claim.Status == models.ClaimStatusRejected {
		return models.AgentResult{
			Status:     models.AgentStatusFlagged,
			Confidence: 0.4,
			Summary:    "claim was previously rejected",
			Issues:     []string{"re-reviewing a rejected claim requires supervisor sign-off"},
		}
	}

	if models.RecommendationForConfidence(claim.ValidationConfidence) == models.RecommendationAutoApprove {
		return models.AgentResult{
			Status:     models.AgentStatusApproved,
			Confidence: 0.95,
			Summary:    "validation confidence meets the auto-approval bar",
		}
	}
	return models.AgentResult{
		Status:     models.AgentStatusApproved,
		Confidence: 0.75,
		Summary:    "no policy violation found, human review still advised",
	}
}
