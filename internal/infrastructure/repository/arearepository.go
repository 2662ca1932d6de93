package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/mappers"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
	"github.com/cragbase/cragbase/internal/shared/db"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
)

type AreaRepository struct {
	db     *gorm.DB
	mapper mappers.AreaMapper
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{
		db:     db,
		mapper: mappers.NewAreaMapper(),
	}
}

func (r *AreaRepository) Create(ctx context.Context, a *area.Area) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AreaRepository) GetByID(ctx context.Context, id uint) (*area.Area, error) {
	var model models.AreaModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("area not found")
		}
		return nil, fmt.Errorf("failed to get area: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AreaRepository) List(ctx context.Context, limit, offset int) ([]*area.Area, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AreaModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count areas: %w", err)
	}

	var areaModels []models.AreaModel
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&areaModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list areas: %w", err)
	}

	areas := make([]*area.Area, len(areaModels))
	for i := range areaModels {
		a, err := r.mapper.ToDomain(&areaModels[i])
		if err != nil {
			return nil, 0, err
		}
		areas[i] = a
	}

	return areas, total, nil
}

func (r *AreaRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AreaModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check area: %w", err)
	}
	return count > 0, nil
}
