package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/crewledger/crewpay-backend/api"
	"github.com/crewledger/crewpay-backend/infra"
	"github.com/crewledger/crewpay-backend/utils"
)

func RunServer() error {
	conf := loadConfiguration()

	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(conf.sentryDsn, conf.env)
	defer sentry.Flush(3 * time.Second)

	uc, pool, err := newUsecases(ctx, conf)
	if err != nil {
		logger.ErrorContext(ctx, "could not set up the application: "+err.Error())
		return err
	}
	defer pool.Close()

	if conf.env == "development" && utils.GetBoolEnv("SEED_SAMPLE_TRIPS", false) {
		if err := uc.NewSeedUsecase().SeedSampleTrips(ctx, utils.GetIntEnv("SEED_TRIP_COUNT", 20)); err != nil {
			logger.ErrorContext(ctx, "could not seed sample trips: "+err.Error())
		}
	}

	router := api.InitRouterMiddlewares(ctx, api.Configuration{Env: conf.env})
	server := api.NewServer(router, api.Configuration{
		Env:            conf.env,
		Port:           utils.GetStringEnv("PORT", "8080"),
		DefaultTimeout: 60 * time.Second,
	}, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "error serving the api: "+err.Error())
		}
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
