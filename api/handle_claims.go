package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewledger/crewpay-backend/dto"
	"github.com/crewledger/crewpay-backend/usecases"
)

func handleGetClaim(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		claimId := c.Param("claimId")

		claim, err := uc.NewClaimReviewUsecase().GetClaim(c.Request.Context(), claimId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"claim": dto.AdaptClaimDto(claim)})
	}
}

func handleReviewClaim(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		claimId := c.Param("claimId")

		decision, err := uc.NewClaimReviewUsecase().ReviewClaim(c.Request.Context(), claimId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"decision": dto.AdaptFinalDecisionDto(decision)})
	}
}
