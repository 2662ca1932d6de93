package http

import (
	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/infrastructure/repository"
	"github.com/cragbase/cragbase/internal/shared/db"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	areaRepo    *repository.AreaRepository
	auditRepo   audit.Repository
	boulderBase *repository.BoulderRepository
	// boulderRepo validates, checks name conflicts and audits every write.
	boulderRepo boulder.Repository
}

func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	areaRepo := repository.NewAreaRepository(gdb)
	auditRepo := repository.NewAuditRepository(gdb)
	boulderBase := repository.NewBoulderRepository(gdb)

	return &repositories{
		areaRepo:    areaRepo,
		auditRepo:   auditRepo,
		boulderBase: boulderBase,
		boulderRepo: repository.NewBoulderStore(boulderBase, auditRepo, db.NewTransactionManager(gdb), log),
	}
}
