package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/boulder/dto"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type CreateBoulderCommand struct {
	AreaID uint
	dto.CreateBoulderRequest
}

type CreateBoulderUseCase struct {
	repo   boulder.Repository
	areas  AreaChecker
	logger logger.Interface
}

func NewCreateBoulderUseCase(repo boulder.Repository, areas AreaChecker, logger logger.Interface) *CreateBoulderUseCase {
	return &CreateBoulderUseCase{
		repo:   repo,
		areas:  areas,
		logger: logger,
	}
}

func (uc *CreateBoulderUseCase) Execute(ctx context.Context, cmd CreateBoulderCommand) (*dto.BoulderResponse, error) {
	if err := ensureArea(ctx, uc.areas, cmd.AreaID); err != nil {
		return nil, err
	}

	b := boulder.NewBoulder(cmd.Name, cmd.AreaID)
	if cmd.ImportID != nil {
		b.SetImport(*cmd.ImportID)
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		uc.logger.Warnw("failed to create boulder", "error", err, "area_id", cmd.AreaID)
		return nil, err
	}

	uc.logger.Infow("boulder created", "id", b.ID(), "area_id", b.AreaID())
	return dto.ToBoulderResponse(b), nil
}
