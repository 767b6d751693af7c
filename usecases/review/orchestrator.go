package review

import (
	"context"
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/utils"
)

// Decisions whose mean agent confidence falls below this are flagged even
// when every individual agent approved.
const flaggingThreshold = 0.7

// DecisionOrchestrator runs the fixed, ordered review checks over one
// submitted claim and folds their results into a FinalDecision. The check
// sequence is static: eligibility and timing first, then the monetary check,
// then policy compliance.
type DecisionOrchestrator struct {
	agents []ReviewAgent
}

func NewDecisionOrchestrator() DecisionOrchestrator {
	return DecisionOrchestrator{
		agents: []ReviewAgent{
			NewReviewAgent("eligibility_timing", checkEligibilityTiming),
			NewReviewAgent("monetary_amount", checkMonetaryAmount),
			NewReviewAgent("policy_compliance", checkPolicyCompliance),
		},
	}
}

// ReviewClaim produces the adjudicated decision for one claim. It never
// panics through to the caller: an unexpected panic in a check yields a
// degraded rejected decision carrying the panic message.
func (o DecisionOrchestrator) ReviewClaim(ctx context.Context, claim models.Claim) (decision models.FinalDecision) {
	defer func() {
		if r := recover(); r != nil {
			utils.LoggerFromContext(ctx).ErrorContext(ctx,
				fmt.Sprintf("claim review panicked, returning degraded decision: %v", r),
				"claim_id", claim.Id,
			)
			decision = degradedDecision(claim.Id, r)
		}
	}()

	results := make([]models.AgentResult, 0, len(o.agents))
	for _, agent := range o.agents {
		results = append(results, agent.Review(ctx, claim))
	}
	return aggregateResults(claim.Id, results)
}

// aggregateResults folds agent results by precedence: any errored agent
// rejects the claim; otherwise a flagged agent or a low mean confidence flags
// it; otherwise it is approved. The mean is unweighted over all agents.
func aggregateResults(claimId string, results []models.AgentResult) models.FinalDecision {
	decision := models.FinalDecision{
		ClaimId:      claimId,
		Status:       models.DecisionStatusApproved,
		AgentResults: results,
	}

	anyError := false
	anyFlagged := false
	confidenceSum := 0.0
	for _, result := range results {
		confidenceSum += result.Confidence
		decision.Issues = append(decision.Issues, result.Issues...)
		decision.TotalDuration += result.Duration

		switch result.Status {
		case models.AgentStatusError:
			anyError = true
		case models.AgentStatusFlagged:
			anyFlagged = true
		}
	}
	if len(results) > 0 {
		decision.Confidence = confidenceSum / float64(len(results))
	}

	switch {
	case anyError:
		decision.Status = models.DecisionStatusRejected
	case anyFlagged || decision.Confidence < flaggingThreshold:
		decision.Status = models.DecisionStatusFlagged
	}
	return decision
}

func degradedDecision(claimId string, cause any) models.FinalDecision {
	message := fmt.Sprintf("review aborted: %v", cause)
	return models.FinalDecision{
		ClaimId:    claimId,
		Status:     models.DecisionStatusRejected,
		Confidence: 0,
		Issues:     []string{message},
		AgentResults: []models.AgentResult{{
			AgentName: "orchestrator",
			Status:    models.AgentStatusError,
			Summary:   message,
			Issues:    []string{message},
		}},
	}
}
