package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/crewledger/crewpay-backend/infra"
	"github.com/crewledger/crewpay-backend/jobs"
	"github.com/crewledger/crewpay-backend/utils"
)

func RunScheduler() error {
	conf := loadConfiguration()

	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(conf.sentryDsn, conf.env)
	defer sentry.Flush(3 * time.Second)

	uc, pool, err := newUsecases(ctx, conf)
	if err != nil {
		logger.ErrorContext(ctx, "could not set up the scheduler: "+err.Error())
		return err
	}
	defer pool.Close()

	jobs.RunScheduler(ctx, uc)
	return nil
}
