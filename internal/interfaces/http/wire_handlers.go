package http

import (
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers"
)

type allHandlers struct {
	areaHandler         *handlers.AreaHandler
	boulderHandler      *handlers.BoulderHandler
	contributionHandler *handlers.ContributionHandler
	mailerHandler       *handlers.MailerHandler
	translationHandler  *handlers.TranslationHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs

	h := &allHandlers{
		areaHandler: handlers.NewAreaHandler(u.createAreaUC, u.getAreaUC, u.listAreasUC, c.translator, c.log),
		boulderHandler: handlers.NewBoulderHandler(
			u.createBoulderUC,
			u.updateBoulderUC,
			u.deleteBoulderUC,
			u.getBoulderUC,
			u.listBouldersUC,
			u.listBoulderAuditsUC,
			c.translator,
			c.log,
		),
		contributionHandler: handlers.NewContributionHandler(u.submitContributionUC, c.translator, c.log),
		mailerHandler:       handlers.NewMailerHandler(u.sendTestEmailUC, c.translator, c.log),
		translationHandler:  handlers.NewTranslationHandler(c.translator, c.log),
	}

	if sqlDB, err := c.db.DB(); err == nil {
		h.healthHandler = handlers.NewHealthHandler(sqlDB)
	} else {
		c.log.Warnw("health check running without database ping", "error", err)
		h.healthHandler = handlers.NewHealthHandler(nil)
	}

	return h
}
