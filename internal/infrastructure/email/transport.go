// Package email delivers composed mail through SMTP, AWS SES, a log sink or
// an in-memory recorder, either inline or through a Redis-backed queue.
package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cragbase/cragbase/internal/application/mailer"
	sharedConfig "github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// ErrEmailServiceNotConfigured is returned when the selected transport has
// no usable settings.
var ErrEmailServiceNotConfigured = errors.New("email service not configured")

const (
	DeliveryMethodSMTP   = "smtp"
	DeliveryMethodSES    = "ses"
	DeliveryMethodMemory = "memory"
	DeliveryMethodLog    = "log"
)

// Envelope is the transport-level form of a message. It is also the JSON
// payload stored on the delivery queue.
type Envelope struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         []string  `json:"to"`
	Subject    string    `json:"subject"`
	HTMLBody   string    `json:"html_body,omitempty"`
	TextBody   string    `json:"text_body,omitempty"`
	Mailer     string    `json:"mailer,omitempty"`
	Action     string    `json:"action,omitempty"`
	Attempts   int       `json:"attempts"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

func NewEnvelope(msg *mailer.Message) *Envelope {
	return &Envelope{
		ID:       uuid.NewString(),
		From:     msg.From,
		To:       append([]string(nil), msg.To...),
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		TextBody: msg.TextBody,
		Mailer:   msg.Mailer,
		Action:   msg.Action,
	}
}

type Transport interface {
	Send(ctx context.Context, env *Envelope) error
}

// NewTransport picks the transport named by cfg.DeliveryMethod.
func NewTransport(ctx context.Context, cfg sharedConfig.MailerConfig, log logger.Interface) (Transport, error) {
	switch cfg.DeliveryMethod {
	case DeliveryMethodSMTP:
		return NewSMTPTransport(cfg.SMTP, log), nil
	case DeliveryMethodSES:
		return NewSESTransport(ctx, cfg.SES, log)
	case DeliveryMethodMemory:
		return NewMemoryTransport(), nil
	case DeliveryMethodLog, "":
		return NewLogTransport(log), nil
	default:
		return nil, fmt.Errorf("unknown mail delivery method %q", cfg.DeliveryMethod)
	}
}
