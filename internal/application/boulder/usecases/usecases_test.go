package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragbase/cragbase/internal/application/boulder/dto"
	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

func storedBoulder(t *testing.T, id uint, name string, areaID uint, lockVersion int) *boulder.Boulder {
	t.Helper()
	now := time.Now()
	b, err := boulder.ReconstructBoulder(id, name, areaID, lockVersion, now, now)
	require.NoError(t, err)
	return b
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestCreateBoulderUseCase(t *testing.T) {
	areas := &mockAreaChecker{existing: map[uint]bool{1: true}}

	t.Run("creates in an existing area and carries the import id", func(t *testing.T) {
		var saved *boulder.Boulder
		repo := &mockBoulderRepository{CreateFunc: func(_ context.Context, b *boulder.Boulder) error {
			saved = b
			return b.SetID(9)
		}}
		uc := NewCreateBoulderUseCase(repo, areas, logger.NewNop())

		resp, err := uc.Execute(context.Background(), CreateBoulderCommand{
			AreaID:               1,
			CreateBoulderRequest: dto.CreateBoulderRequest{Name: "Karma", ImportID: uintPtr(4)},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(9), resp.ID)
		assert.Equal(t, "Karma", resp.Name)

		importID, ok := saved.ImportID()
		require.True(t, ok)
		assert.Equal(t, uint(4), importID)
	})

	t.Run("unknown area", func(t *testing.T) {
		uc := NewCreateBoulderUseCase(&mockBoulderRepository{}, areas, logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateBoulderCommand{AreaID: 2})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("repository errors propagate", func(t *testing.T) {
		repo := &mockBoulderRepository{CreateFunc: func(context.Context, *boulder.Boulder) error {
			return apperrors.NewConflictError("a boulder with this name already exists in the area")
		}}
		uc := NewCreateBoulderUseCase(repo, areas, logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateBoulderCommand{AreaID: 1})
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestUpdateBoulderUseCase(t *testing.T) {
	areas := &mockAreaChecker{existing: map[uint]bool{1: true, 2: true}}

	t.Run("applies only provided fields", func(t *testing.T) {
		var seenLock int
		repo := &mockBoulderRepository{
			GetByIDFunc: func(context.Context, uint) (*boulder.Boulder, error) {
				return storedBoulder(t, 5, "Old", 1, 3), nil
			},
			UpdateFunc: func(_ context.Context, b *boulder.Boulder) error {
				seenLock = b.LockVersion()
				b.SetLockVersion(b.LockVersion() + 1)
				return nil
			},
		}
		uc := NewUpdateBoulderUseCase(repo, areas, logger.NewNop())

		resp, err := uc.Execute(context.Background(), UpdateBoulderCommand{
			ID:                   5,
			UpdateBoulderRequest: dto.UpdateBoulderRequest{AreaID: uintPtr(2)},
		})
		require.NoError(t, err)
		assert.Equal(t, "Old", resp.Name)
		assert.Equal(t, uint(2), resp.AreaID)
		assert.Equal(t, 3, seenLock)
		assert.Equal(t, 4, resp.LockVersion)
	})

	t.Run("client lock version is used for the write", func(t *testing.T) {
		var seenLock int
		repo := &mockBoulderRepository{
			GetByIDFunc: func(context.Context, uint) (*boulder.Boulder, error) {
				return storedBoulder(t, 5, "Old", 1, 3), nil
			},
			UpdateFunc: func(_ context.Context, b *boulder.Boulder) error {
				seenLock = b.LockVersion()
				return apperrors.NewConflictError("boulder was modified by someone else")
			},
		}
		uc := NewUpdateBoulderUseCase(repo, areas, logger.NewNop())

		_, err := uc.Execute(context.Background(), UpdateBoulderCommand{
			ID:                   5,
			UpdateBoulderRequest: dto.UpdateBoulderRequest{Name: strPtr("New"), LockVersion: intPtr(1)},
		})
		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, 1, seenLock)
	})

	t.Run("moving to an unknown area", func(t *testing.T) {
		repo := &mockBoulderRepository{GetByIDFunc: func(context.Context, uint) (*boulder.Boulder, error) {
			return storedBoulder(t, 5, "Old", 1, 0), nil
		}}
		uc := NewUpdateBoulderUseCase(repo, areas, logger.NewNop())

		_, err := uc.Execute(context.Background(), UpdateBoulderCommand{
			ID:                   5,
			UpdateBoulderRequest: dto.UpdateBoulderRequest{AreaID: uintPtr(7)},
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing boulder", func(t *testing.T) {
		uc := NewUpdateBoulderUseCase(&mockBoulderRepository{}, areas, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateBoulderCommand{ID: 5})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteBoulderUseCase(t *testing.T) {
	var deleted *boulder.Boulder
	repo := &mockBoulderRepository{
		GetByIDFunc: func(context.Context, uint) (*boulder.Boulder, error) {
			return storedBoulder(t, 5, "Gone", 1, 0), nil
		},
		DeleteFunc: func(_ context.Context, b *boulder.Boulder) error {
			deleted = b
			return nil
		},
	}
	uc := NewDeleteBoulderUseCase(repo, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), DeleteBoulderCommand{ID: 5, ImportID: uintPtr(8)}))
	require.NotNil(t, deleted)
	id, ok := deleted.ImportID()
	assert.True(t, ok)
	assert.Equal(t, uint(8), id)
}

func TestListBouldersUseCase(t *testing.T) {
	areas := &mockAreaChecker{existing: map[uint]bool{1: true}}
	repo := &mockBoulderRepository{ListByAreaFunc: func(_ context.Context, areaID uint, limit, offset int) ([]*boulder.Boulder, int64, error) {
		assert.Equal(t, uint(1), areaID)
		assert.Equal(t, 20, limit)
		assert.Equal(t, 0, offset)
		return []*boulder.Boulder{storedBoulder(t, 1, "A", 1, 0), storedBoulder(t, 2, "B", 1, 0)}, 2, nil
	}}
	uc := NewListBouldersUseCase(repo, areas, logger.NewNop())

	resp, err := uc.Execute(context.Background(), ListBouldersQuery{AreaID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Total)

	_, err = uc.Execute(context.Background(), ListBouldersQuery{AreaID: 3})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetBoulderUseCase(t *testing.T) {
	repo := &mockBoulderRepository{GetByIDFunc: func(context.Context, uint) (*boulder.Boulder, error) {
		return storedBoulder(t, 5, "Karma", 1, 2), nil
	}}
	resp, err := NewGetBoulderUseCase(repo, logger.NewNop()).Execute(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LockVersion)
}

func TestListBoulderAuditsUseCase(t *testing.T) {
	repo := &mockAuditRepository{ListForAuditableFunc: func(_ context.Context, auditableType string, id uint) ([]*audit.Audit, error) {
		assert.Equal(t, "Boulder", auditableType)
		entry, err := audit.NewAudit(auditableType, id, audit.ActionCreate, map[string]any{"name": "Karma"})
		require.NoError(t, err)
		entry.AssociateWith("Import", 3)
		entry.SetVersion(1)
		return []*audit.Audit{entry}, nil
	}}

	items, err := NewListBoulderAuditsUseCase(repo, logger.NewNop()).Execute(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "create", items[0].Action)
	assert.Equal(t, "Import", items[0].AssociatedType)
	assert.Equal(t, uint(3), *items[0].AssociatedID)
}
