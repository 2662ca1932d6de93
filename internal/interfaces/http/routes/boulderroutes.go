package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/permission"
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
)

// BoulderRouteConfig holds dependencies for boulder routes.
type BoulderRouteConfig struct {
	BoulderHandler       *handlers.BoulderHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupBoulderRoutes configures boulder routes.
func SetupBoulderRoutes(api *gin.RouterGroup, cfg *BoulderRouteConfig) {
	perm := cfg.PermissionMiddleware

	boulders := api.Group("/boulders")
	{
		boulders.GET("/:id", perm.RequirePermission(permission.ResourceBoulder, permission.ActionRead), cfg.BoulderHandler.GetBoulder)
		boulders.PATCH("/:id", perm.RequirePermission(permission.ResourceBoulder, permission.ActionUpdate), cfg.BoulderHandler.UpdateBoulder)
		boulders.DELETE("/:id", perm.RequirePermission(permission.ResourceBoulder, permission.ActionDelete), cfg.BoulderHandler.DeleteBoulder)
		boulders.GET("/:id/audits", perm.RequirePermission(permission.ResourceAudit, permission.ActionRead), cfg.BoulderHandler.ListBoulderAudits)
	}
}
