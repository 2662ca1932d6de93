package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/area/dto"
	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type GetAreaUseCase struct {
	repo   area.Repository
	logger logger.Interface
}

func NewGetAreaUseCase(repo area.Repository, logger logger.Interface) *GetAreaUseCase {
	return &GetAreaUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetAreaUseCase) Execute(ctx context.Context, id uint) (*dto.AreaResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAreaResponse(a), nil
}
