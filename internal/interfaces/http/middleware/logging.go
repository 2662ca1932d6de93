package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// Logger logs one line per request once the handler chain has finished.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}
		if locale := c.GetString(constants.ContextKeyLocale); locale != "" {
			args = append(args, "locale", locale)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
