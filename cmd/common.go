package cmd

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crewledger/crewpay-backend/infra"
	"github.com/crewledger/crewpay-backend/repositories"
	"github.com/crewledger/crewpay-backend/usecases"
	"github.com/crewledger/crewpay-backend/utils"
)

type appConfiguration struct {
	env           string
	loggingFormat string
	sentryDsn     string
	pgConfig      infra.PgConfig
	aiConfig      infra.AIConfiguration
	gatewayUrl    string
}

func loadConfiguration() appConfiguration {
	return appConfiguration{
		env:           utils.GetStringEnv("ENV", "development"),
		loggingFormat: utils.GetStringEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetStringEnv("SENTRY_DSN", ""),
		pgConfig: infra.PgConfig{
			Hostname: utils.GetRequiredStringEnv("PG_HOSTNAME"),
			Port:     utils.GetStringEnv("PG_PORT", "5432"),
			User:     utils.GetRequiredStringEnv("PG_USER"),
			Password: utils.GetRequiredStringEnv("PG_PASSWORD"),
			Database: utils.GetStringEnv("PG_DATABASE", "crewpay"),
			SslMode:  utils.GetStringEnv("PG_SSL_MODE", "prefer"),
		},
		aiConfig: infra.AIConfiguration{
			BaseUrl: utils.GetStringEnv("AI_BASE_URL", ""),
			ApiKey:  utils.GetStringEnv("AI_API_KEY", ""),
			Model:   utils.GetStringEnv("AI_MODEL", "gpt-4o-mini"),
		},
		gatewayUrl: utils.GetStringEnv("NOTIFICATION_GATEWAY_URL", ""),
	}
}

func newUsecases(ctx context.Context, conf appConfiguration) (usecases.Usecases, *pgxpool.Pool, error) {
	pool, err := infra.NewPostgresConnectionPool(ctx, conf.pgConfig.GetConnectionString())
	if err != nil {
		return usecases.Usecases{}, nil, err
	}

	repos := repositories.NewRepositories(
		repositories.NewExecutorGetter(pool),
		repositories.WithNotificationGateway(conf.gatewayUrl),
	)
	return usecases.NewUsecases(repos, conf.aiConfig), pool, nil
}
