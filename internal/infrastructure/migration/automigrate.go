package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// AutoMigrateModels lists the models owned by this service, parents first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AreaModel{},
		&models.BoulderModel{},
		&models.AuditModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the gorm models. Used for
// sqlite and local development where no versioned history is needed.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
