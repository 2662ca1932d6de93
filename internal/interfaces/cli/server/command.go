package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/database"
	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	"github.com/cragbase/cragbase/internal/infrastructure/migration"
	httpRouter "github.com/cragbase/cragbase/internal/interfaces/http"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/goroutine"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Cragbase HTTP API with the given environment and configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == constants.EnvProduction {
			log.Warnw("auto-migration is enabled in production")
		}
		if err := migration.NewManager(cfg.Database.Driver, log).Migrate(database.Get()); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router, err := httpRouter.NewRouter(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	if cfg.I18n.Watch {
		watcher := locale.NewWatcher(router.Catalog(), log)
		goroutine.SafeGo(log, "locale-watcher", func() {
			if err := watcher.Run(ctx); err != nil {
				log.Errorw("locale watcher stopped", "error", err)
			}
		})
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening",
			"address", cfg.Server.GetAddr(),
			"mode", gin.Mode())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	log.Infow("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return gin.ReleaseMode
	case constants.EnvTest, "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
