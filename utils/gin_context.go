package utils

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// StoreLoggerInContextMiddleware makes the request logger reachable through
// the request context for everything downstream of the router.
func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
