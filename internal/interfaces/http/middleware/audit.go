package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/shared/constants"
)

// AuditActor records who is making the request so that audit entries written
// further down can be attributed. It must run after Authenticate and RequestID.
func AuditActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := audit.Actor{
			RemoteAddress: c.ClientIP(),
			RequestUUID:   c.GetString(constants.ContextKeyRequestID),
		}
		if v, ok := c.Get(constants.ContextKeyUserID); ok {
			if id, ok := v.(uint); ok {
				actor.UserID = &id
			}
		}

		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
