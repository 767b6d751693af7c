package jobs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/crewledger/crewpay-backend/usecases"
	"github.com/crewledger/crewpay-backend/utils"
)

// ProcessCompletedTrips runs one claims-processing pass. The run itself never
// errors; a run whose RunResult carries errors is reported as a job failure
// so the scheduler tick shows up red in monitoring.
func ProcessCompletedTrips(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(ctx, uc, "process_completed_trips",
		func(ctx context.Context, uc usecases.Usecases) error {
			logger := utils.LoggerFromContext(ctx)

			result := uc.NewCompletionMonitor().ProcessCompletedTrips(ctx)
			if len(result.Errors) > 0 {
				for _, errString := range result.Errors {
					logger.ErrorContext(ctx, "claims processing error: "+errString)
				}
				return errors.Newf("claims processing finished with %d error(s)", len(result.Errors))
			}
			return nil
		})
}
