package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/boulder/dto"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type UpdateBoulderCommand struct {
	ID uint
	dto.UpdateBoulderRequest
}

type UpdateBoulderUseCase struct {
	repo   boulder.Repository
	areas  AreaChecker
	logger logger.Interface
}

func NewUpdateBoulderUseCase(repo boulder.Repository, areas AreaChecker, logger logger.Interface) *UpdateBoulderUseCase {
	return &UpdateBoulderUseCase{
		repo:   repo,
		areas:  areas,
		logger: logger,
	}
}

func (uc *UpdateBoulderUseCase) Execute(ctx context.Context, cmd UpdateBoulderCommand) (*dto.BoulderResponse, error) {
	b, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.LockVersion != nil {
		b.SetLockVersion(*cmd.LockVersion)
	}
	if cmd.Name != nil {
		b.Rename(*cmd.Name)
	}
	if cmd.AreaID != nil && *cmd.AreaID != b.AreaID() {
		if err := ensureArea(ctx, uc.areas, *cmd.AreaID); err != nil {
			return nil, err
		}
		if err := b.MoveToArea(*cmd.AreaID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.ImportID != nil {
		b.SetImport(*cmd.ImportID)
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Warnw("failed to update boulder", "error", err, "id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("boulder updated", "id", b.ID(), "lock_version", b.LockVersion())
	return dto.ToBoulderResponse(b), nil
}
