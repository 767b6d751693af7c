package cmd

import (
	"context"
	"fmt"

	"github.com/crewledger/crewpay-backend/repositories"
	"github.com/crewledger/crewpay-backend/utils"
)

func RunMigrations() error {
	conf := loadConfiguration()

	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(conf.pgConfig)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}
	return nil
}
