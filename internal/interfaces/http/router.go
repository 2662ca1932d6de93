package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
	"github.com/cragbase/cragbase/internal/interfaces/http/routes"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.Locale(c.catalog))
	engine.Use(c.authMiddleware.Authenticate())
	engine.Use(middleware.AuditActor())

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/health", c.hdlrs.healthHandler.Health)

	api := engine.Group("/api")

	routes.SetupAreaRoutes(api, &routes.AreaRouteConfig{
		AreaHandler:          c.hdlrs.areaHandler,
		BoulderHandler:       c.hdlrs.boulderHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupBoulderRoutes(api, &routes.BoulderRouteConfig{
		BoulderHandler:       c.hdlrs.boulderHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupContributionRoutes(api, &routes.ContributionRouteConfig{
		ContributionHandler:  c.hdlrs.contributionHandler,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})

	routes.SetupTranslationRoutes(api, &routes.TranslationRouteConfig{
		TranslationHandler:   c.hdlrs.translationHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		MailerHandler:        c.hdlrs.mailerHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

// Catalog returns the loaded locale catalog.
func (r *Router) Catalog() *locale.Catalog {
	return r.container.Catalog()
}

// Shutdown releases router-owned resources.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
