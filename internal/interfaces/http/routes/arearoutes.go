package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/permission"
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
)

// AreaRouteConfig holds dependencies for area routes.
type AreaRouteConfig struct {
	AreaHandler          *handlers.AreaHandler
	BoulderHandler       *handlers.BoulderHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAreaRoutes configures area routes, including the boulders nested
// under an area.
func SetupAreaRoutes(api *gin.RouterGroup, cfg *AreaRouteConfig) {
	perm := cfg.PermissionMiddleware

	areas := api.Group("/areas")
	{
		areas.GET("", perm.RequirePermission(permission.ResourceArea, permission.ActionRead), cfg.AreaHandler.ListAreas)
		areas.POST("", perm.RequirePermission(permission.ResourceArea, permission.ActionCreate), cfg.AreaHandler.CreateArea)
		areas.GET("/:id", perm.RequirePermission(permission.ResourceArea, permission.ActionRead), cfg.AreaHandler.GetArea)

		areas.GET("/:id/boulders", perm.RequirePermission(permission.ResourceBoulder, permission.ActionRead), cfg.BoulderHandler.ListBoulders)
		areas.POST("/:id/boulders", perm.RequirePermission(permission.ResourceBoulder, permission.ActionCreate), cfg.BoulderHandler.CreateBoulder)
	}
}
