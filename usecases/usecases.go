package usecases

import (
	"time"

	"github.com/crewledger/crewpay-backend/infra"
	"github.com/crewledger/crewpay-backend/repositories"
	"github.com/crewledger/crewpay-backend/usecases/detection"
	"github.com/crewledger/crewpay-backend/usecases/executor_factory"
	"github.com/crewledger/crewpay-backend/usecases/pipeline"
	"github.com/crewledger/crewpay-backend/usecases/review"
	"github.com/crewledger/crewpay-backend/usecases/validation"
)

// Usecases is the composition root. It owns nothing but wiring: every
// concrete dependency is built here and handed to the usecase constructors
// as the narrow interface they ask for.
type Usecases struct {
	Repositories repositories.Repositories
	AIConfig     infra.AIConfiguration
}

func NewUsecases(repos repositories.Repositories, aiConfig infra.AIConfiguration) Usecases {
	return Usecases{
		Repositories: repos,
		AIConfig:     aiConfig,
	}
}

func (u Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(u.Repositories.ExecutorGetter)
}

func (u Usecases) NewValidator() validation.Validator {
	return validation.NewValidator(validation.NewLlmReasoningClient(u.AIConfig))
}

func (u Usecases) NewCompletionMonitor() pipeline.CompletionMonitor {
	return pipeline.NewCompletionMonitor(
		u.NewExecutorFactory(),
		u.Repositories.CrewPayDbRepo,
		u.Repositories.CrewPayDbRepo,
		detection.NewDetectorSet(),
		u.NewValidator(),
		u.Repositories.PushNotificationer,
		time.Now,
	)
}

func (u Usecases) NewClaimReviewUsecase() review.ClaimReviewUsecase {
	return review.NewClaimReviewUsecase(
		u.NewExecutorFactory(),
		u.Repositories.CrewPayDbRepo,
	)
}
