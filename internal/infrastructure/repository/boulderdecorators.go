package repository

import (
	"context"
	"fmt"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// TransactionRunner runs fn in one database transaction carried by ctx.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuditedBoulderRepository writes exactly one audit entry per create, update
// or destroy, in the same transaction as the mutation. A pending import
// correlation on the boulder is attached to that entry and cleared once the
// mutation commits. A rolled back write leaves the boulder as it was so the
// call can be retried.
type AuditedBoulderRepository struct {
	boulder.Repository
	audits audit.Repository
	tx     TransactionRunner
	logger logger.Interface
}

func NewAuditedBoulderRepository(
	inner boulder.Repository,
	audits audit.Repository,
	tx TransactionRunner,
	logger logger.Interface,
) *AuditedBoulderRepository {
	return &AuditedBoulderRepository{
		Repository: inner,
		audits:     audits,
		tx:         tx,
		logger:     logger,
	}
}

func (r *AuditedBoulderRepository) Create(ctx context.Context, b *boulder.Boulder) error {
	state := b.PersistedState()
	err := r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := r.Repository.Create(ctx, b); err != nil {
			return err
		}
		return r.record(ctx, b, audit.ActionCreate, b.AuditedAttributes())
	})
	if err != nil {
		b.RestorePersistedState(state)
		return err
	}
	b.ClearImport()
	return nil
}

func (r *AuditedBoulderRepository) Update(ctx context.Context, b *boulder.Boulder) error {
	state := b.PersistedState()
	err := r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		before, err := r.Repository.GetByID(ctx, b.ID())
		if err != nil {
			return err
		}
		if err := r.Repository.Update(ctx, b); err != nil {
			return err
		}
		changes := audit.Diff(before.AuditedAttributes(), b.AuditedAttributes())
		return r.record(ctx, b, audit.ActionUpdate, changes)
	})
	if err != nil {
		b.RestorePersistedState(state)
		return err
	}
	b.ClearImport()
	return nil
}

func (r *AuditedBoulderRepository) Delete(ctx context.Context, b *boulder.Boulder) error {
	err := r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := r.Repository.GetByID(ctx, b.ID())
		if err != nil {
			return err
		}
		if err := r.Repository.Delete(ctx, b); err != nil {
			return err
		}
		return r.record(ctx, b, audit.ActionDestroy, current.AuditedAttributes())
	})
	if err != nil {
		return err
	}
	b.ClearImport()
	return nil
}

func (r *AuditedBoulderRepository) record(ctx context.Context, b *boulder.Boulder, action audit.Action, changes map[string]any) error {
	entry, err := audit.NewAudit(constants.AuditableBoulder, b.ID(), action, changes)
	if err != nil {
		return fmt.Errorf("failed to build audit: %w", err)
	}
	if importID, ok := b.ImportID(); ok {
		entry.AssociateWith(constants.AssociatedImport, importID)
	}
	entry.SetActor(audit.ActorFromContext(ctx))

	if err := r.audits.Create(ctx, entry); err != nil {
		r.logger.Errorw("failed to write boulder audit",
			"boulder_id", b.ID(),
			"action", action,
			"error", err,
		)
		return err
	}
	return nil
}

// ConflictCheckedBoulderRepository consults a ConflictChecker before every
// create and update.
type ConflictCheckedBoulderRepository struct {
	boulder.Repository
	checker boulder.ConflictChecker
	logger  logger.Interface
}

func NewConflictCheckedBoulderRepository(
	inner boulder.Repository,
	checker boulder.ConflictChecker,
	logger logger.Interface,
) *ConflictCheckedBoulderRepository {
	return &ConflictCheckedBoulderRepository{
		Repository: inner,
		checker:    checker,
		logger:     logger,
	}
}

func (r *ConflictCheckedBoulderRepository) Create(ctx context.Context, b *boulder.Boulder) error {
	if err := r.check(ctx, b); err != nil {
		return err
	}
	return r.Repository.Create(ctx, b)
}

func (r *ConflictCheckedBoulderRepository) Update(ctx context.Context, b *boulder.Boulder) error {
	if err := r.check(ctx, b); err != nil {
		return err
	}
	return r.Repository.Update(ctx, b)
}

func (r *ConflictCheckedBoulderRepository) check(ctx context.Context, b *boulder.Boulder) error {
	if err := r.checker.CheckConflict(ctx, b); err != nil {
		r.logger.Warnw("boulder write rejected by conflict check",
			"boulder_id", b.ID(),
			"area_id", b.AreaID(),
			"error", err,
		)
		return err
	}
	return nil
}

// NewBoulderStore composes the full boulder repository: conflict checking
// runs inside the audited transaction, ahead of the gorm write.
func NewBoulderStore(
	base *BoulderRepository,
	audits audit.Repository,
	tx TransactionRunner,
	logger logger.Interface,
) boulder.Repository {
	checked := NewConflictCheckedBoulderRepository(base, boulder.NewDuplicateNameChecker(base), logger)
	return NewAuditedBoulderRepository(checked, audits, tx, logger)
}
