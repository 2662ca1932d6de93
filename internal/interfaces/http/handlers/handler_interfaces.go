package handlers

import (
	"context"

	areadto "github.com/cragbase/cragbase/internal/application/area/dto"
	areaUsecases "github.com/cragbase/cragbase/internal/application/area/usecases"
	boulderdto "github.com/cragbase/cragbase/internal/application/boulder/dto"
	boulderUsecases "github.com/cragbase/cragbase/internal/application/boulder/usecases"
	contributiondto "github.com/cragbase/cragbase/internal/application/contribution/dto"
	mailerUsecases "github.com/cragbase/cragbase/internal/application/mailer/usecases"
)

// Use case interfaces consumed by the handlers

type createAreaUseCase interface {
	Execute(ctx context.Context, req areadto.CreateAreaRequest) (*areadto.AreaResponse, error)
}

type getAreaUseCase interface {
	Execute(ctx context.Context, id uint) (*areadto.AreaResponse, error)
}

type listAreasUseCase interface {
	Execute(ctx context.Context, query areaUsecases.ListAreasQuery) (*areadto.ListAreasResponse, error)
}

type createBoulderUseCase interface {
	Execute(ctx context.Context, cmd boulderUsecases.CreateBoulderCommand) (*boulderdto.BoulderResponse, error)
}

type updateBoulderUseCase interface {
	Execute(ctx context.Context, cmd boulderUsecases.UpdateBoulderCommand) (*boulderdto.BoulderResponse, error)
}

type deleteBoulderUseCase interface {
	Execute(ctx context.Context, cmd boulderUsecases.DeleteBoulderCommand) error
}

type getBoulderUseCase interface {
	Execute(ctx context.Context, id uint) (*boulderdto.BoulderResponse, error)
}

type listBouldersUseCase interface {
	Execute(ctx context.Context, query boulderUsecases.ListBouldersQuery) (*boulderdto.ListBouldersResponse, error)
}

type listBoulderAuditsUseCase interface {
	Execute(ctx context.Context, boulderID uint) ([]*boulderdto.AuditResponse, error)
}

type submitContributionUseCase interface {
	Execute(ctx context.Context, req contributiondto.SubmitContributionRequest) (*contributiondto.SubmitContributionResponse, error)
}

type sendTestEmailUseCase interface {
	Execute(ctx context.Context, cmd mailerUsecases.SendTestEmailCommand) (*mailerUsecases.SendTestEmailResult, error)
}
