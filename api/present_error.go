package api

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/utils"
)

func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx := c.Request.Context()
		utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("Unexpected Error: %+v", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
