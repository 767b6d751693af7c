package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewLogging emits one structured access log line per request. Liveness
// probes can be excluded through ignorePath to keep the logs readable.
func NewLogging(logger *slog.Logger, ignorePath ...string) gin.HandlerFunc {
	ignore := make(map[string]struct{}, len(ignorePath))
	for _, path := range ignorePath {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := ignore[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		latency := time.Since(start).Milliseconds()
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
		}
		if c.Errors != nil {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}
		logger.LogAttrs(c.Request.Context(), level,
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
