package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/auth"
	"github.com/cragbase/cragbase/internal/shared/authorization"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate identifies the caller. Requests without a token continue as
// guests; a token that is present but invalid is rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if header == "" {
			c.Set(constants.ContextKeyUserRole, string(authorization.RoleGuest))
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		c.Next()
	}
}
