package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewledger/crewpay-backend/dto"
	"github.com/crewledger/crewpay-backend/usecases"
)

// handleTriggerClaimsProcessing runs one processing pass synchronously and
// returns its summary. The run itself never errors; per-trip failures are
// inside the RunResult.
func handleTriggerClaimsProcessing(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		result := uc.NewCompletionMonitor().TriggerManualProcessing(c.Request.Context())
		c.JSON(http.StatusAccepted, gin.H{"run": dto.AdaptRunResultDto(result)})
	}
}
