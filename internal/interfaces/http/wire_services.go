package http

import (
	"context"
	"fmt"
	"time"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/email"
	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	"github.com/cragbase/cragbase/internal/infrastructure/template"
	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/services/markdown"
)

func (c *Container) initLocalization() error {
	b, err := brand.New(c.cfg.Brand)
	if err != nil {
		return fmt.Errorf("failed to load brand: %w", err)
	}
	c.brand = b

	catalog, err := locale.NewCatalog(c.cfg.I18n.Path, c.cfg.I18n.DefaultLocale, c.log)
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}
	c.catalog = catalog
	c.translator = i18n.NewTranslator(catalog, b)

	c.log.Infow("locales loaded", "locales", catalog.Locales(), "default", catalog.DefaultLocale())
	return nil
}

func (c *Container) initMail(ctx context.Context) error {
	creds, err := config.LoadCredentials(c.cfg.Credentials.Path)
	if err != nil {
		return err
	}
	c.credentials = creds

	renderer := template.NewMailRenderer(c.translator, c.cfg.Mailer.TemplatesPath, c.log)
	if err := renderer.Load(); err != nil {
		return fmt.Errorf("failed to load mail templates: %w", err)
	}

	transport, err := email.NewTransport(ctx, c.cfg.Mailer, c.log)
	if err != nil {
		return fmt.Errorf("failed to create mail transport: %w", err)
	}

	var queue *email.Queue
	if c.redis != nil {
		queue = email.NewQueue(c.redis, c.cfg.Mailer.Queue.Key)
	}

	deliverer := email.NewDeliverer(transport, queue, c.log)
	c.mailBase = mailer.NewBase(c.brand, renderer, deliverer, c.log)
	return nil
}

func (c *Container) contributeMailer() *mailer.ContributeMailer {
	return mailer.NewContributeMailer(c.mailBase, c.credentials, markdown.NewService())
}

func (c *Container) testMailer() *mailer.TestMailer {
	return mailer.NewTestMailer(c.mailBase, c.credentials)
}

func rateLimitWindow(cfg *config.Config) time.Duration {
	if cfg.RateLimit.WindowSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
}
