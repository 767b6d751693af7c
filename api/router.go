package api

import (
	"context"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/crewledger/crewpay-backend/api/middleware"
	"github.com/crewledger/crewpay-backend/usecases"
	"github.com/crewledger/crewpay-backend/utils"
)

func InitRouterMiddlewares(ctx context.Context, conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.NewLogging(logger, "/liveness"))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe())

	r.POST("/claims-processing/trigger", handleTriggerClaimsProcessing(uc))
	r.POST("/trips/:tripId/process", handleProcessTrip(uc))

	r.GET("/claims/:claimId", handleGetClaim(uc))
	r.POST("/claims/:claimId/review", handleReviewClaim(uc))
}
