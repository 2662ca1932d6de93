package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/mappers"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
	"github.com/cragbase/cragbase/internal/shared/db"
)

type AuditRepository struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{
		db:     db,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditRepository) Create(ctx context.Context, a *audit.Audit) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var current int
	if err := tx.Model(&models.AuditModel{}).
		Where("auditable_type = ? AND auditable_id = ?", a.AuditableType(), a.AuditableID()).
		Select("COALESCE(MAX(version), 0)").
		Scan(&current).Error; err != nil {
		return fmt.Errorf("failed to read audit version: %w", err)
	}
	a.SetVersion(current + 1)

	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *AuditRepository) ListForAuditable(ctx context.Context, auditableType string, auditableID uint) ([]*audit.Audit, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var auditModels []models.AuditModel
	if err := tx.
		Where("auditable_type = ? AND auditable_id = ?", auditableType, auditableID).
		Order("version ASC").
		Find(&auditModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}

	audits := make([]*audit.Audit, len(auditModels))
	for i := range auditModels {
		a, err := r.mapper.ToDomain(&auditModels[i])
		if err != nil {
			return nil, err
		}
		audits[i] = a
	}
	return audits, nil
}
