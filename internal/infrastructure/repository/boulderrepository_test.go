package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/infrastructure/persistence/models"
	"github.com/cragbase/cragbase/internal/shared/db"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.AreaModel{}, &models.BoulderModel{}, &models.AuditModel{}))
	return gdb
}

type testStore struct {
	db       *gorm.DB
	areas    *AreaRepository
	base     *BoulderRepository
	audits   *AuditRepository
	boulders boulder.Repository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	gdb := setupTestDB(t)
	base := NewBoulderRepository(gdb)
	audits := NewAuditRepository(gdb)
	return &testStore{
		db:       gdb,
		areas:    NewAreaRepository(gdb),
		base:     base,
		audits:   audits,
		boulders: NewBoulderStore(base, audits, db.NewTransactionManager(gdb), logger.NewNop()),
	}
}

func (s *testStore) createArea(t *testing.T, name string) *area.Area {
	t.Helper()
	a, err := area.NewArea(name)
	require.NoError(t, err)
	require.NoError(t, s.areas.Create(context.Background(), a))
	return a
}

func (s *testStore) auditsFor(t *testing.T, b *boulder.Boulder) []*audit.Audit {
	t.Helper()
	entries, err := s.audits.ListForAuditable(context.Background(), "Boulder", b.ID())
	require.NoError(t, err)
	return entries
}

func TestAreaRepository(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	bleau := s.createArea(t, "Fontainebleau")
	s.createArea(t, "Albarracín")

	got, err := s.areas.GetByID(ctx, bleau.ID())
	require.NoError(t, err)
	assert.Equal(t, "Fontainebleau", got.Name())

	_, err = s.areas.GetByID(ctx, 999)
	assert.True(t, apperrors.IsNotFoundError(err))

	list, total, err := s.areas.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "Albarracín", list[0].Name())

	ok, err := s.areas.Exists(ctx, bleau.ID())
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.areas.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoulderRepository_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")

	b := boulder.NewBoulder("La Marie-Rose", a.ID())
	require.NoError(t, s.base.Create(ctx, b))
	require.NotZero(t, b.ID())

	got, err := s.base.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, "La Marie-Rose", got.Name())
	assert.Equal(t, 0, got.LockVersion())

	got.Rename("La Marie Rose")
	require.NoError(t, s.base.Update(ctx, got))
	assert.Equal(t, 1, got.LockVersion())

	list, total, err := s.base.ListByArea(ctx, a.ID(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "La Marie Rose", list[0].Name())

	require.NoError(t, s.base.Delete(ctx, got))
	_, err = s.base.GetByID(ctx, b.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.True(t, apperrors.IsNotFoundError(s.base.Delete(ctx, got)))
}

func TestBoulderRepository_ValidatesOnSave(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")

	b := boulder.NewBoulder(strings.Repeat("a", 256), a.ID())
	err := s.boulders.Create(ctx, b)
	require.Error(t, err)
	fe, ok := apperrors.GetAppError(err).FieldError("name")
	require.True(t, ok)
	assert.Equal(t, apperrors.RuleMaxLength, fe.Rule)
	assert.Zero(t, b.ID())

	var count int64
	require.NoError(t, s.db.Model(&models.AuditModel{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, s.boulders.Create(ctx, boulder.NewBoulder("", a.ID())))
}

func TestBoulderRepository_OptimisticLocking(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")

	b := boulder.NewBoulder("Karma", a.ID())
	require.NoError(t, s.boulders.Create(ctx, b))

	first, err := s.boulders.GetByID(ctx, b.ID())
	require.NoError(t, err)
	second, err := s.boulders.GetByID(ctx, b.ID())
	require.NoError(t, err)

	first.Rename("Karma (sit)")
	require.NoError(t, s.boulders.Update(ctx, first))

	second.Rename("Karma (stand)")
	err = s.boulders.Update(ctx, second)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Contains(t, err.Error(), "modified by someone else")

	// The rejected update must not leave an audit behind.
	assert.Len(t, s.auditsFor(t, b), 2)
}

func TestBoulderStore_ConflictCheck(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	bleau := s.createArea(t, "Bleau")
	other := s.createArea(t, "Other")

	require.NoError(t, s.boulders.Create(ctx, boulder.NewBoulder("Rainbow Rocket", bleau.ID())))

	err := s.boulders.Create(ctx, boulder.NewBoulder("  rainbow rocket ", bleau.ID()))
	assert.True(t, apperrors.IsConflictError(err))

	require.NoError(t, s.boulders.Create(ctx, boulder.NewBoulder("Rainbow Rocket", other.ID())))
	require.NoError(t, s.boulders.Create(ctx, boulder.NewBoulder("", bleau.ID())))
	require.NoError(t, s.boulders.Create(ctx, boulder.NewBoulder("", bleau.ID())))

	// Renaming a boulder to its own name is not a conflict.
	b := boulder.NewBoulder("Duroxmanie", bleau.ID())
	require.NoError(t, s.boulders.Create(ctx, b))
	b.Rename("DUROXMANIE")
	require.NoError(t, s.boulders.Update(ctx, b))

	b.Rename("Rainbow Rocket")
	assert.True(t, apperrors.IsConflictError(s.boulders.Update(ctx, b)))
}

func TestBoulderStore_AuditsEveryMutation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")
	b2 := s.createArea(t, "Cuvier")

	uid := uint(7)
	ctx = audit.WithActor(ctx, audit.Actor{UserID: &uid, RemoteAddress: "192.0.2.1", RequestUUID: "req-42"})

	b := boulder.NewBoulder("Cortomaltèse", a.ID())
	require.NoError(t, s.boulders.Create(ctx, b))

	entries := s.auditsFor(t, b)
	require.Len(t, entries, 1)
	created := entries[0]
	assert.Equal(t, audit.ActionCreate, created.Action())
	assert.Equal(t, 1, created.Version())
	assert.Equal(t, "Cortomaltèse", created.Changes()["name"])
	assert.False(t, created.IsAssociated())
	assert.Empty(t, created.AssociatedType())
	require.NotNil(t, created.UserID())
	assert.Equal(t, uid, *created.UserID())
	assert.Equal(t, "192.0.2.1", created.RemoteAddress())
	assert.Equal(t, "req-42", created.RequestUUID())

	b.Rename("Cortomaltese")
	require.NoError(t, b.MoveToArea(b2.ID()))
	require.NoError(t, s.boulders.Update(ctx, b))

	entries = s.auditsFor(t, b)
	require.Len(t, entries, 2)
	updated := entries[1]
	assert.Equal(t, audit.ActionUpdate, updated.Action())
	assert.Equal(t, 2, updated.Version())
	assert.Equal(t, []any{"Cortomaltèse", "Cortomaltese"}, updated.Changes()["name"])
	assert.Contains(t, updated.Changes(), "area_id")

	require.NoError(t, s.boulders.Delete(ctx, b))

	entries = s.auditsFor(t, b)
	require.Len(t, entries, 3)
	destroyed := entries[2]
	assert.Equal(t, audit.ActionDestroy, destroyed.Action())
	assert.Equal(t, 3, destroyed.Version())
	assert.Equal(t, "Cortomaltese", destroyed.Changes()["name"])
}

func TestBoulderStore_ImportCorrelation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")

	b := boulder.NewBoulder("Imported", a.ID())
	b.SetImport(31)
	require.NoError(t, s.boulders.Create(ctx, b))

	_, pending := b.ImportID()
	assert.False(t, pending, "correlation is consumed by the mutation")

	b.Rename("Edited by hand")
	require.NoError(t, s.boulders.Update(ctx, b))

	b.SetImport(32)
	require.NoError(t, s.boulders.Delete(ctx, b))

	entries := s.auditsFor(t, b)
	require.Len(t, entries, 3)

	assert.True(t, entries[0].IsAssociated())
	assert.Equal(t, "Import", entries[0].AssociatedType())
	assert.Equal(t, uint(31), *entries[0].AssociatedID())

	assert.False(t, entries[1].IsAssociated())
	assert.Nil(t, entries[1].AssociatedID())

	assert.True(t, entries[2].IsAssociated())
	assert.Equal(t, uint(32), *entries[2].AssociatedID())
}

func TestBoulderStore_FailedMutationKeepsImport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")

	require.NoError(t, s.boulders.Create(ctx, boulder.NewBoulder("Taken", a.ID())))

	b := boulder.NewBoulder("taken", a.ID())
	b.SetImport(5)
	require.Error(t, s.boulders.Create(ctx, b))

	id, ok := b.ImportID()
	require.True(t, ok)
	assert.Equal(t, uint(5), id)
}

type failOnceAuditRepository struct {
	*AuditRepository
	fail bool
}

func (r *failOnceAuditRepository) Create(ctx context.Context, a *audit.Audit) error {
	if r.fail {
		r.fail = false
		return errors.New("audit insert failed")
	}
	return r.AuditRepository.Create(ctx, a)
}

func TestBoulderStore_RolledBackWriteCanBeRetried(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := s.createArea(t, "Bleau")

	audits := &failOnceAuditRepository{AuditRepository: s.audits}
	store := NewBoulderStore(s.base, audits, db.NewTransactionManager(s.db), logger.NewNop())

	t.Run("create", func(t *testing.T) {
		b := boulder.NewBoulder("Rainbow Rocket", a.ID())
		b.SetImport(9)

		audits.fail = true
		require.Error(t, store.Create(ctx, b))
		assert.Zero(t, b.ID())
		_, ok := b.ImportID()
		assert.True(t, ok)

		require.NoError(t, store.Create(ctx, b))
		assert.NotZero(t, b.ID())
		entries := s.auditsFor(t, b)
		require.Len(t, entries, 1)
		assert.Equal(t, uint(9), *entries[0].AssociatedID())
	})

	t.Run("update", func(t *testing.T) {
		b := boulder.NewBoulder("Duroxmanie", a.ID())
		require.NoError(t, store.Create(ctx, b))
		lock := b.LockVersion()

		b.Rename("Duroxmanie assis")
		audits.fail = true
		require.Error(t, store.Update(ctx, b))
		assert.Equal(t, lock, b.LockVersion())

		require.NoError(t, store.Update(ctx, b))
		assert.Equal(t, lock+1, b.LockVersion())
		assert.Len(t, s.auditsFor(t, b), 2)

		stored, err := s.base.GetByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, "Duroxmanie assis", stored.Name())
	})
}
