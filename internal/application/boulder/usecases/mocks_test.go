package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
)

type mockBoulderRepository struct {
	CreateFunc     func(ctx context.Context, b *boulder.Boulder) error
	UpdateFunc     func(ctx context.Context, b *boulder.Boulder) error
	DeleteFunc     func(ctx context.Context, b *boulder.Boulder) error
	GetByIDFunc    func(ctx context.Context, id uint) (*boulder.Boulder, error)
	ListByAreaFunc func(ctx context.Context, areaID uint, limit, offset int) ([]*boulder.Boulder, int64, error)
}

func (m *mockBoulderRepository) Create(ctx context.Context, b *boulder.Boulder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return b.SetID(1)
}

func (m *mockBoulderRepository) Update(ctx context.Context, b *boulder.Boulder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	b.SetLockVersion(b.LockVersion() + 1)
	return nil
}

func (m *mockBoulderRepository) Delete(ctx context.Context, b *boulder.Boulder) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, b)
	}
	return nil
}

func (m *mockBoulderRepository) GetByID(ctx context.Context, id uint) (*boulder.Boulder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("boulder not found")
}

func (m *mockBoulderRepository) ListByArea(ctx context.Context, areaID uint, limit, offset int) ([]*boulder.Boulder, int64, error) {
	if m.ListByAreaFunc != nil {
		return m.ListByAreaFunc(ctx, areaID, limit, offset)
	}
	return nil, 0, nil
}

type mockAreaChecker struct {
	existing map[uint]bool
}

func (m *mockAreaChecker) Exists(_ context.Context, id uint) (bool, error) {
	return m.existing[id], nil
}

type mockAuditRepository struct {
	ListForAuditableFunc func(ctx context.Context, auditableType string, auditableID uint) ([]*audit.Audit, error)
}

func (m *mockAuditRepository) Create(context.Context, *audit.Audit) error {
	return nil
}

func (m *mockAuditRepository) ListForAuditable(ctx context.Context, auditableType string, auditableID uint) ([]*audit.Audit, error) {
	if m.ListForAuditableFunc != nil {
		return m.ListForAuditableFunc(ctx, auditableType, auditableID)
	}
	return nil, nil
}
