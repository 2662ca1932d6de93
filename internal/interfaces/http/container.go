package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/infrastructure/auth"
	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	"github.com/cragbase/cragbase/internal/infrastructure/permission"
	"github.com/cragbase/cragbase/internal/interfaces/http/middleware"
	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of the HTTP server, wired together in dependency order.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Localization
	brand      *brand.Brand
	catalog    *locale.Catalog
	translator *i18n.Translator

	// Mail
	credentials *config.Credentials
	mailBase    *mailer.Base

	// Security
	jwtSvc               *auth.JWTService
	enforcer             *permission.Enforcer
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories
	c.initInfrastructure(ctx)

	// Section 2: Localization - Brand, Catalog, Translator
	if err := c.initLocalization(); err != nil {
		return nil, err
	}

	// Section 3: Mail - Renderer, Transport, Queue, Mailers
	if err := c.initMail(ctx); err != nil {
		return nil, err
	}

	// Section 4: Security - JWT, Casbin, Middlewares
	if err := c.initSecurity(); err != nil {
		return nil, err
	}

	// Section 5: Use cases and handlers
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) {
	c.redis = connectRedis(ctx, c.cfg, c.log)
	c.repos = newRepositories(c.db, c.log)
}

// connectRedis returns nil when Redis is unreachable; the mail queue and
// the rate limiter then degrade to inline delivery and no limiting.
func connectRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, continuing without queue and rate limiting",
			"address", cfg.Redis.GetAddr(),
			"error", err,
		)
		_ = client.Close()
		return nil
	}

	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	return client
}

func (c *Container) initSecurity() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Auth.CasbinModelPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.InitDefaultPermissions(); err != nil {
		return fmt.Errorf("failed to initialize default permissions: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(
		c.redis,
		"cragbase:ratelimit:contributions",
		c.cfg.RateLimit.Limit,
		rateLimitWindow(c.cfg),
		c.log,
	)
	return nil
}

// Catalog exposes the locale catalog so callers can watch it for changes.
func (c *Container) Catalog() *locale.Catalog {
	return c.catalog
}

// Shutdown releases the resources owned by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
