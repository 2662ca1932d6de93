package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/mappers"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
	"github.com/cragbase/cragbase/internal/shared/db"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
)

// BoulderRepository persists boulders with gorm. Create and Update validate
// the boulder first; Update uses optimistic locking on lock_version.
type BoulderRepository struct {
	db     *gorm.DB
	mapper mappers.BoulderMapper
}

func NewBoulderRepository(db *gorm.DB) *BoulderRepository {
	return &BoulderRepository{
		db:     db,
		mapper: mappers.NewBoulderMapper(),
	}
}

func (r *BoulderRepository) Create(ctx context.Context, b *boulder.Boulder) error {
	if err := b.Validate(); err != nil {
		return err
	}

	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create boulder: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BoulderRepository) Update(ctx context.Context, b *boulder.Boulder) error {
	if err := b.Validate(); err != nil {
		return err
	}

	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)
	next := b.LockVersion() + 1

	result := tx.Model(&models.BoulderModel{}).
		Where("id = ? AND lock_version = ?", b.ID(), b.LockVersion()).
		Updates(map[string]any{
			"name":         model.Name,
			"name_key":     model.NameKey,
			"area_id":      model.AreaID,
			"lock_version": next,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update boulder: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, b.ID())
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError("boulder not found")
		}
		return apperrors.NewConflictError(
			"boulder was modified by someone else",
			fmt.Sprintf("boulder_id=%d lock_version=%d", b.ID(), b.LockVersion()),
		)
	}

	b.SetLockVersion(next)
	return nil
}

func (r *BoulderRepository) Delete(ctx context.Context, b *boulder.Boulder) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.BoulderModel{}, b.ID())
	if result.Error != nil {
		return fmt.Errorf("failed to delete boulder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("boulder not found")
	}
	return nil
}

func (r *BoulderRepository) GetByID(ctx context.Context, id uint) (*boulder.Boulder, error) {
	var model models.BoulderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("boulder not found")
		}
		return nil, fmt.Errorf("failed to get boulder: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BoulderRepository) ListByArea(ctx context.Context, areaID uint, limit, offset int) ([]*boulder.Boulder, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BoulderModel{}).Where("area_id = ?", areaID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count boulders: %w", err)
	}

	var boulderModels []models.BoulderModel
	if err := query.Order("name_key ASC, id ASC").Limit(limit).Offset(offset).Find(&boulderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list boulders: %w", err)
	}

	boulders := make([]*boulder.Boulder, len(boulderModels))
	for i := range boulderModels {
		b, err := r.mapper.ToDomain(&boulderModels[i])
		if err != nil {
			return nil, 0, err
		}
		boulders[i] = b
	}

	return boulders, total, nil
}

// ExistsByName implements boulder.NameIndex.
func (r *BoulderRepository) ExistsByName(ctx context.Context, areaID uint, normalizedName string, excludeID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BoulderModel{}).
		Where("area_id = ? AND name_key = ?", areaID, normalizedName)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check boulder name: %w", err)
	}
	return count > 0, nil
}

func (r *BoulderRepository) exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.BoulderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check boulder: %w", err)
	}
	return count > 0, nil
}
