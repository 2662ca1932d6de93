// Package mailer composes transactional emails. Base holds the defaults
// every mailer shares; concrete mailers pick recipients, subject and template.
package mailer

import (
	"context"
	"fmt"

	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// DefaultLayout is the layout wrapped around every mail body.
const DefaultLayout = "mailer"

// ErrNoRecipients is returned when a mail would be composed without any
// recipient address.
var ErrNoRecipients = errors.NewInternalError("no mail recipients configured")

// View identifies a template and the data it is rendered with.
type View struct {
	Mailer string
	Action string
	Layout string
	Locale string
	Data   map[string]any
}

type Rendered struct {
	HTML string
	Text string
}

type Renderer interface {
	Render(ctx context.Context, view View) (*Rendered, error)
}

type Deliverer interface {
	DeliverNow(ctx context.Context, msg *Message) error
	DeliverLater(ctx context.Context, msg *Message) error
}

// SecretStore is the read side of the credentials store.
type SecretStore interface {
	Dig(path ...string) any
}

type Defaults struct {
	From   string
	Layout string
}

type MailOptions struct {
	To      []string
	Subject string
	Mailer  string
	Action  string
	Data    map[string]any
	// From and Layout override the defaults for one message.
	From   string
	Layout string
	Locale string
}

type Base struct {
	defaults  Defaults
	brandVars map[string]any
	renderer  Renderer
	deliverer Deliverer
	logger    logger.Interface
}

func NewBase(b *brand.Brand, renderer Renderer, deliverer Deliverer, log logger.Interface) *Base {
	return &Base{
		defaults: Defaults{
			From:   b.Sender(),
			Layout: DefaultLayout,
		},
		brandVars: map[string]any{
			i18n.KeyBrandName: b.Name(),
			"brand_url":       b.URL(),
			"contact_email":   b.Contact().Email(),
			"contact_website": b.Contact().Website(),
		},
		renderer:  renderer,
		deliverer: deliverer,
		logger:    log,
	}
}

func (b *Base) Defaults() Defaults {
	return b.defaults
}

// Mail renders opts into a deliverable message. It fails with
// ErrNoRecipients before rendering when opts.To is empty.
func (b *Base) Mail(ctx context.Context, opts MailOptions) (*Message, error) {
	if len(opts.To) == 0 {
		b.logger.Warnw("mail has no recipients, not composing",
			"mailer", opts.Mailer,
			"action", opts.Action,
		)
		return nil, ErrNoRecipients
	}

	from := opts.From
	if from == "" {
		from = b.defaults.From
	}
	layout := opts.Layout
	if layout == "" {
		layout = b.defaults.Layout
	}
	locale := opts.Locale
	if locale == "" {
		locale = i18n.LocaleFromContext(ctx)
	}

	data := i18n.ReverseMerge(opts.Data, b.brandVars)

	rendered, err := b.renderer.Render(ctx, View{
		Mailer: opts.Mailer,
		Action: opts.Action,
		Layout: layout,
		Locale: locale,
		Data:   data,
	})
	if err != nil {
		b.logger.Errorw("failed to render mail",
			"mailer", opts.Mailer,
			"action", opts.Action,
			"error", err,
		)
		return nil, fmt.Errorf("failed to render %s/%s: %w", opts.Mailer, opts.Action, err)
	}

	return &Message{
		From:      from,
		To:        append([]string(nil), opts.To...),
		Subject:   opts.Subject,
		HTMLBody:  rendered.HTML,
		TextBody:  rendered.Text,
		Mailer:    opts.Mailer,
		Action:    opts.Action,
		Locale:    locale,
		deliverer: b.deliverer,
	}, nil
}
