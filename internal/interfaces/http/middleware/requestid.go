package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cragbase/cragbase/internal/shared/constants"
)

const maxRequestIDLength = 64

// RequestID propagates the caller's X-Request-ID or assigns a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Next()
	}
}
