package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/boulder/dto"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type GetBoulderUseCase struct {
	repo   boulder.Repository
	logger logger.Interface
}

func NewGetBoulderUseCase(repo boulder.Repository, logger logger.Interface) *GetBoulderUseCase {
	return &GetBoulderUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetBoulderUseCase) Execute(ctx context.Context, id uint) (*dto.BoulderResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToBoulderResponse(b), nil
}
