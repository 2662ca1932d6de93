package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/permission"
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
)

// ContributionRouteConfig holds dependencies for contribution routes.
type ContributionRouteConfig struct {
	ContributionHandler  *handlers.ContributionHandler
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupContributionRoutes configures the public contribution form endpoint.
func SetupContributionRoutes(api *gin.RouterGroup, cfg *ContributionRouteConfig) {
	api.POST("/contributions",
		cfg.RateLimiter.Limit(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceContribution, permission.ActionCreate),
		cfg.ContributionHandler.SubmitContribution,
	)
}
