package jobs

import (
	"context"
	"fmt"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/crewledger/crewpay-backend/usecases"
	"github.com/crewledger/crewpay-backend/utils"
)

const defaultProcessingIntervalMinutes = 30

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler blocks and runs the claims-processing job on a fixed cadence.
// The interval comes from PROCESSING_INTERVAL_MINUTES. A failed tick is
// logged and reported through monitoring; the cadence is never interrupted.
func RunScheduler(ctx context.Context, uc usecases.Usecases) {
	intervalMinutes := utils.GetIntEnv("PROCESSING_INTERVAL_MINUTES", defaultProcessingIntervalMinutes)
	if intervalMinutes < 1 || intervalMinutes > 59 {
		intervalMinutes = defaultProcessingIntervalMinutes
	}

	taskr := tasker.New(tasker.Option{
		Verbose: true,
		Tz:      "UTC",
	}).WithContext(ctx)

	// one pass right away, so a restart does not wait a full interval
	if err := ProcessCompletedTrips(ctx, uc); err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "initial claims processing run failed: "+err.Error())
	}

	notConcurrent := false
	taskr.Task(fmt.Sprintf("*/%d * * * *", intervalMinutes), func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "process_completed_trips")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := ProcessCompletedTrips(ctx, uc)
		return errToReturnCode(err), err
	}, notConcurrent)

	taskr.Run()
}
