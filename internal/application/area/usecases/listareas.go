package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/area/dto"
	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type ListAreasQuery struct {
	Page     int
	PageSize int
}

type ListAreasUseCase struct {
	repo   area.Repository
	logger logger.Interface
}

func NewListAreasUseCase(repo area.Repository, logger logger.Interface) *ListAreasUseCase {
	return &ListAreasUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListAreasUseCase) Execute(ctx context.Context, query ListAreasQuery) (*dto.ListAreasResponse, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	areas, total, err := uc.repo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list areas", "error", err)
		return nil, err
	}

	items := make([]*dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		items = append(items, dto.ToAreaResponse(a))
	}
	return &dto.ListAreasResponse{Items: items, Total: total}, nil
}
