package mappers

import (
	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
)

type AreaMapper interface {
	ToModel(a *area.Area) *models.AreaModel
	ToDomain(model *models.AreaModel) (*area.Area, error)
}

type AreaMapperImpl struct{}

func NewAreaMapper() AreaMapper {
	return &AreaMapperImpl{}
}

func (m *AreaMapperImpl) ToModel(a *area.Area) *models.AreaModel {
	return &models.AreaModel{
		ID:        a.ID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func (m *AreaMapperImpl) ToDomain(model *models.AreaModel) (*area.Area, error) {
	return area.ReconstructArea(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}
