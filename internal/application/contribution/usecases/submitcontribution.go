package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/contribution/dto"
	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/domain/area"
	"github.com/cragbase/cragbase/internal/domain/boulder"
	"github.com/cragbase/cragbase/internal/domain/contribution"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type ContributionEmailComposer interface {
	NewContributionEmail(ctx context.Context, params mailer.ContributionParams) (*mailer.Message, error)
}

type AreaFinder interface {
	GetByID(ctx context.Context, id uint) (*area.Area, error)
}

type BoulderFinder interface {
	GetByID(ctx context.Context, id uint) (*boulder.Boulder, error)
}

// SubmitContributionUseCase turns a public contribution into a queued email
// to the editors. Nothing is persisted.
type SubmitContributionUseCase struct {
	areas    AreaFinder
	boulders BoulderFinder
	composer ContributionEmailComposer
	logger   logger.Interface
}

func NewSubmitContributionUseCase(
	areas AreaFinder,
	boulders BoulderFinder,
	composer ContributionEmailComposer,
	logger logger.Interface,
) *SubmitContributionUseCase {
	return &SubmitContributionUseCase{
		areas:    areas,
		boulders: boulders,
		composer: composer,
		logger:   logger,
	}
}

func (uc *SubmitContributionUseCase) Execute(ctx context.Context, req dto.SubmitContributionRequest) (*dto.SubmitContributionResponse, error) {
	c, err := contribution.NewContribution(req.Name, req.Email, req.AreaID, req.BoulderID, req.Message)
	if err != nil {
		return nil, err
	}

	a, err := uc.areas.GetByID(ctx, c.AreaID())
	if err != nil {
		return nil, err
	}

	params := mailer.ContributionParams{
		Contribution: c,
		AreaName:     a.Name(),
	}

	if id := c.BoulderID(); id != nil {
		b, err := uc.boulders.GetByID(ctx, *id)
		if err != nil {
			return nil, err
		}
		if b.AreaID() != a.ID() {
			return nil, apperrors.NewFieldValidationError(apperrors.FieldError{
				Field:   "boulder_id",
				Rule:    apperrors.RuleInvalid,
				Message: "boulder does not belong to the area",
			})
		}
		params.BoulderName = b.Name()
	}

	msg, err := uc.composer.NewContributionEmail(ctx, params)
	if err != nil {
		uc.logger.Errorw("failed to compose contribution email", "error", err, "area_id", a.ID())
		return nil, err
	}

	if err := msg.DeliverLater(ctx); err != nil {
		uc.logger.Errorw("failed to enqueue contribution email", "error", err, "area_id", a.ID())
		return nil, err
	}

	uc.logger.Infow("contribution submitted",
		"area_id", a.ID(),
		"boulder_id", c.BoulderID(),
		"recipients", len(msg.To),
	)

	return &dto.SubmitContributionResponse{
		AreaID:      c.AreaID(),
		BoulderID:   c.BoulderID(),
		SubmittedAt: c.SubmittedAt(),
	}, nil
}
