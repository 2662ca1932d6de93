package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/shared/authorization"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the caller's role against the casbin policies.
// Guests that are refused get 401 so clients know to log in; authenticated
// callers get 403.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			role = string(authorization.RoleGuest)
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			_, authenticated := c.Get(constants.ContextKeyUserID)
			m.logger.Warnw("permission denied", "role", role, "resource", resource, "action", action)
			if !authenticated {
				utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			} else {
				utils.ErrorResponseWithError(c, errors.NewForbiddenError("insufficient permissions"))
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
