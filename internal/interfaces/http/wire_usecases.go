package http

import (
	areaUsecases "github.com/cragbase/cragbase/internal/application/area/usecases"
	boulderUsecases "github.com/cragbase/cragbase/internal/application/boulder/usecases"
	contributionUsecases "github.com/cragbase/cragbase/internal/application/contribution/usecases"
	mailerUsecases "github.com/cragbase/cragbase/internal/application/mailer/usecases"
)

type allUseCases struct {
	// Area
	createAreaUC *areaUsecases.CreateAreaUseCase
	getAreaUC    *areaUsecases.GetAreaUseCase
	listAreasUC  *areaUsecases.ListAreasUseCase

	// Boulder
	createBoulderUC     *boulderUsecases.CreateBoulderUseCase
	updateBoulderUC     *boulderUsecases.UpdateBoulderUseCase
	deleteBoulderUC     *boulderUsecases.DeleteBoulderUseCase
	getBoulderUC        *boulderUsecases.GetBoulderUseCase
	listBouldersUC      *boulderUsecases.ListBouldersUseCase
	listBoulderAuditsUC *boulderUsecases.ListBoulderAuditsUseCase

	// Contribution
	submitContributionUC *contributionUsecases.SubmitContributionUseCase

	// Mailer
	sendTestEmailUC *mailerUsecases.SendTestEmailUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos

	return &allUseCases{
		createAreaUC: areaUsecases.NewCreateAreaUseCase(r.areaRepo, c.log),
		getAreaUC:    areaUsecases.NewGetAreaUseCase(r.areaRepo, c.log),
		listAreasUC:  areaUsecases.NewListAreasUseCase(r.areaRepo, c.log),

		createBoulderUC:     boulderUsecases.NewCreateBoulderUseCase(r.boulderRepo, r.areaRepo, c.log),
		updateBoulderUC:     boulderUsecases.NewUpdateBoulderUseCase(r.boulderRepo, r.areaRepo, c.log),
		deleteBoulderUC:     boulderUsecases.NewDeleteBoulderUseCase(r.boulderRepo, c.log),
		getBoulderUC:        boulderUsecases.NewGetBoulderUseCase(r.boulderRepo, c.log),
		listBouldersUC:      boulderUsecases.NewListBouldersUseCase(r.boulderRepo, r.areaRepo, c.log),
		listBoulderAuditsUC: boulderUsecases.NewListBoulderAuditsUseCase(r.auditRepo, c.log),

		submitContributionUC: contributionUsecases.NewSubmitContributionUseCase(r.areaRepo, r.boulderRepo, c.contributeMailer(), c.log),

		sendTestEmailUC: mailerUsecases.NewSendTestEmailUseCase(c.testMailer(), c.log),
	}
}
