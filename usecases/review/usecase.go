package review

import (
	"context"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories"
	"github.com/crewledger/crewpay-backend/usecases/executor_factory"
)

type claimReader interface {
	GetClaimById(ctx context.Context, exec repositories.Executor, claimId string) (models.Claim, error)
}

// ClaimReviewUsecase loads a claim and runs it through the decision
// orchestrator, for the review endpoint.
type ClaimReviewUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	claimRepository claimReader
	orchestrator    DecisionOrchestrator
}

func NewClaimReviewUsecase(
	executorFactory executor_factory.ExecutorFactory,
	claimRepository claimReader,
) ClaimReviewUsecase {
	return ClaimReviewUsecase{
		executorFactory: executorFactory,
		claimRepository: claimRepository,
		orchestrator:    NewDecisionOrchestrator(),
	}
}

func (uc ClaimReviewUsecase) ReviewClaim(ctx context.Context, claimId string) (models.FinalDecision, error) {
	claim, err := uc.claimRepository.GetClaimById(ctx, uc.executorFactory.NewExecutor(), claimId)
	if err != nil {
		return models.FinalDecision{}, err
	}
	return uc.orchestrator.ReviewClaim(ctx, claim), nil
}

func (uc ClaimReviewUsecase) GetClaim(ctx context.Context, claimId string) (models.Claim, error) {
	return uc.claimRepository.GetClaimById(ctx, uc.executorFactory.NewExecutor(), claimId)
}
