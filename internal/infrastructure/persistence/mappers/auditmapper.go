package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
)

type AuditMapper interface {
	ToModel(a *audit.Audit) (*models.AuditModel, error)
	ToDomain(model *models.AuditModel) (*audit.Audit, error)
}

type AuditMapperImpl struct{}

func NewAuditMapper() AuditMapper {
	return &AuditMapperImpl{}
}

func (m *AuditMapperImpl) ToModel(a *audit.Audit) (*models.AuditModel, error) {
	changes, err := json.Marshal(a.Changes())
	if err != nil {
		return nil, fmt.Errorf("failed to encode audited changes: %w", err)
	}

	return &models.AuditModel{
		ID:             a.ID(),
		AuditableType:  a.AuditableType(),
		AuditableID:    a.AuditableID(),
		AssociatedType: a.AssociatedType(),
		AssociatedID:   a.AssociatedID(),
		Action:         string(a.Action()),
		AuditedChanges: datatypes.JSON(changes),
		Version:        a.Version(),
		UserID:         a.UserID(),
		RemoteAddress:  a.RemoteAddress(),
		RequestUUID:    a.RequestUUID(),
		CreatedAt:      a.CreatedAt(),
	}, nil
}

func (m *AuditMapperImpl) ToDomain(model *models.AuditModel) (*audit.Audit, error) {
	changes := map[string]any{}
	if len(model.AuditedChanges) > 0 {
		if err := json.Unmarshal(model.AuditedChanges, &changes); err != nil {
			return nil, fmt.Errorf("failed to decode audited changes: %w", err)
		}
	}

	return audit.ReconstructAudit(
		model.ID,
		model.AuditableType,
		model.AuditableID,
		model.AssociatedType,
		model.AssociatedID,
		audit.Action(model.Action),
		changes,
		model.Version,
		model.UserID,
		model.RemoteAddress,
		model.RequestUUID,
		model.CreatedAt,
	)
}
