package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/permission"
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
)

// TranslationRouteConfig holds dependencies for translation routes.
type TranslationRouteConfig struct {
	TranslationHandler   *handlers.TranslationHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTranslationRoutes exposes message lookups to front-end clients.
func SetupTranslationRoutes(api *gin.RouterGroup, cfg *TranslationRouteConfig) {
	api.GET("/translations/*key",
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceTranslation, permission.ActionRead),
		cfg.TranslationHandler.Translate,
	)
}
