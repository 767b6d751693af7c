package review

import (
	"context"
	"time"

	"github.com/crewledger/crewpay-backend/models"
)

// CheckFunc is one specialized review check over a submitted claim. A check
// returns a result in every case; returning a result with AgentStatusError is
// how it reports its own failure.
type CheckFunc func(ctx context.Context, claim models.Claim) models.AgentResult

// ReviewAgent names a check and stamps its results with the agent name and
// elapsed time, so checks themselves stay pure claim-to-result functions.
type ReviewAgent struct {
	name  string
	check CheckFunc
}

func NewReviewAgent(name string, check CheckFunc) ReviewAgent {
	return ReviewAgent{name: name, check: check}
}

func (a ReviewAgent) Name() string {
	return a.name
}

func (a ReviewAgent) Review(ctx context.Context, claim models.Claim) models.AgentResult {
	start := time.Now()
	result := a.check(ctx, claim)
	result.AgentName = a.name
	result.Duration = time.Since(start)
	return result
}
