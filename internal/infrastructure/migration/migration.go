package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/infrastructure/database"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for a database driver: versioned scripts for
// MySQL, model-derived schema for sqlite.
func NewManager(driver string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(driver) {
	case database.DriverMySQL, "":
		strategy = NewGolangMigrateStrategy(log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// GetStrategyInfo returns information about the current strategy
func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case "gorm_auto_migrate":
		return "GORM AutoMigrate - Automatic schema migration based on struct definitions"
	case "golang_migrate":
		return "golang-migrate - Version-controlled SQL migration scripts"
	default:
		return "Unknown migration strategy"
	}
}
