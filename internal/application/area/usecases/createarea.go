package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/area/dto"
	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type CreateAreaUseCase struct {
	repo   area.Repository
	logger logger.Interface
}

func NewCreateAreaUseCase(repo area.Repository, logger logger.Interface) *CreateAreaUseCase {
	return &CreateAreaUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateAreaUseCase) Execute(ctx context.Context, req dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	a, err := area.NewArea(req.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to save area", "error", err, "name", a.Name())
		return nil, err
	}

	uc.logger.Infow("area created", "id", a.ID(), "name", a.Name())
	return dto.ToAreaResponse(a), nil
}
