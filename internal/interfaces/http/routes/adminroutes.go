package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/permission"
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	MailerHandler        *handlers.MailerHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	{
		admin.POST("/mailer/test",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceMailer, permission.ActionSend),
			cfg.MailerHandler.SendTestEmail,
		)
	}
}
