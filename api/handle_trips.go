package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crewledger/crewpay-backend/dto"
	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/usecases"
)

func handleProcessTrip(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		tripId, err := uuid.Parse(c.Param("tripId"))
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, "tripId is not a valid uuid"))
			return
		}

		result, err := uc.NewCompletionMonitor().ProcessSingleTrip(c.Request.Context(), tripId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"run": dto.AdaptRunResultDto(result)})
	}
}
