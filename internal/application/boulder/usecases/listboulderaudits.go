package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/boulder/dto"
	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// ListBoulderAuditsUseCase returns a boulder's history, oldest first. The
// history outlives the boulder, so a deleted id still lists its entries.
type ListBoulderAuditsUseCase struct {
	audits audit.Repository
	logger logger.Interface
}

func NewListBoulderAuditsUseCase(audits audit.Repository, logger logger.Interface) *ListBoulderAuditsUseCase {
	return &ListBoulderAuditsUseCase{
		audits: audits,
		logger: logger,
	}
}

func (uc *ListBoulderAuditsUseCase) Execute(ctx context.Context, boulderID uint) ([]*dto.AuditResponse, error) {
	entries, err := uc.audits.ListForAuditable(ctx, constants.AuditableBoulder, boulderID)
	if err != nil {
		uc.logger.Errorw("failed to list boulder audits", "error", err, "boulder_id", boulderID)
		return nil, err
	}

	items := make([]*dto.AuditResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToAuditResponse(e))
	}
	return items, nil
}
