package mappers

import (
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
)

type BoulderMapper interface {
	ToModel(b *boulder.Boulder) *models.BoulderModel
	ToDomain(model *models.BoulderModel) (*boulder.Boulder, error)
}

type BoulderMapperImpl struct{}

func NewBoulderMapper() BoulderMapper {
	return &BoulderMapperImpl{}
}

func (m *BoulderMapperImpl) ToModel(b *boulder.Boulder) *models.BoulderModel {
	return &models.BoulderModel{
		ID:          b.ID(),
		Name:        b.Name(),
		NameKey:     boulder.NormalizeName(b.Name()),
		AreaID:      b.AreaID(),
		LockVersion: b.LockVersion(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func (m *BoulderMapperImpl) ToDomain(model *models.BoulderModel) (*boulder.Boulder, error) {
	return boulder.ReconstructBoulder(
		model.ID,
		model.Name,
		model.AreaID,
		model.LockVersion,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
