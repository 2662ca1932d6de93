package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type DeleteBoulderCommand struct {
	ID       uint
	ImportID *uint
}

type DeleteBoulderUseCase struct {
	repo   boulder.Repository
	logger logger.Interface
}

func NewDeleteBoulderUseCase(repo boulder.Repository, logger logger.Interface) *DeleteBoulderUseCase {
	return &DeleteBoulderUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteBoulderUseCase) Execute(ctx context.Context, cmd DeleteBoulderCommand) error {
	b, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if cmd.ImportID != nil {
		b.SetImport(*cmd.ImportID)
	}

	if err := uc.repo.Delete(ctx, b); err != nil {
		uc.logger.Errorw("failed to delete boulder", "error", err, "id", cmd.ID)
		return err
	}

	uc.logger.Infow("boulder deleted", "id", cmd.ID)
	return nil
}
