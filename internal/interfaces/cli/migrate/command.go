package migrate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/database"
	"github.com/cragbase/cragbase/internal/infrastructure/migration"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

const scriptsPath = "./internal/infrastructure/migration/scripts"

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking the version, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newVersionCommand(),
		newForceCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending migrations. MySQL uses the versioned scripts; sqlite derives the schema from the models.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of versioned migrations (MySQL only).`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show migration version",
		Long:  `Display the current migration version and whether the database is dirty.`,
		RunE:  runVersion,
	}
}

func newForceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Force the migration version",
		Long:  `Set the migration version without running scripts, clearing the dirty flag after a failed migration.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runForce,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create empty up and down migration files with the next version number.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func initDatabase() (*config.Config, logger.Interface, *gorm.DB, error) {
	cfg, log, err := initEnv()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, database.Get(), nil
}

// versioned returns the golang-migrate strategy, or an error for drivers
// that have no versioned scripts.
func versioned(cfg *config.Config, log logger.Interface) (*migration.GolangMigrateStrategy, error) {
	strategy, ok := migration.NewManager(cfg.Database.Driver, log).GetStrategy().(*migration.GolangMigrateStrategy)
	if !ok {
		return nil, fmt.Errorf("versioned migrations are not supported for driver %q", cfg.Database.Driver)
	}
	return strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := initDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	if err := migration.NewManager(cfg.Database.Driver, log).Migrate(db); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := initDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := versioned(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(db, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := initDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := versioned(cfg, log)
	if err != nil {
		return err
	}

	version, dirty, err := strategy.GetVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)
	fmt.Fprintf(out, "  Dirty:           %t\n", dirty)

	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", args[0], err)
	}

	cfg, log, db, err := initDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := versioned(cfg, log)
	if err != nil {
		return err
	}

	if err := strategy.Force(db, version); err != nil {
		return fmt.Errorf("failed to force version: %w", err)
	}

	log.Infow("migration version forced", "version", version)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}

	up, down, err := migration.NewGenerator(scriptsPath, log).CreateMigration(name)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nCreated %s\n", up, down)
	return nil
}
