package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/boulder/dto"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type ListBouldersQuery struct {
	AreaID   uint
	Page     int
	PageSize int
}

type ListBouldersUseCase struct {
	repo   boulder.Repository
	areas  AreaChecker
	logger logger.Interface
}

func NewListBouldersUseCase(repo boulder.Repository, areas AreaChecker, logger logger.Interface) *ListBouldersUseCase {
	return &ListBouldersUseCase{
		repo:   repo,
		areas:  areas,
		logger: logger,
	}
}

func (uc *ListBouldersUseCase) Execute(ctx context.Context, query ListBouldersQuery) (*dto.ListBouldersResponse, error) {
	if err := ensureArea(ctx, uc.areas, query.AreaID); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	boulders, total, err := uc.repo.ListByArea(ctx, query.AreaID, p.PageSize, p.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list boulders", "error", err, "area_id", query.AreaID)
		return nil, err
	}

	items := make([]*dto.BoulderResponse, 0, len(boulders))
	for _, b := range boulders {
		items = append(items, dto.ToBoulderResponse(b))
	}
	return &dto.ListBouldersResponse{Items: items, Total: total}, nil
}
