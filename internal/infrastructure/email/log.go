package email

import (
	"context"

	"github.com/cragbase/cragbase/internal/shared/logger"
)

// LogTransport writes envelopes to the log. Used in development.
type LogTransport struct {
	logger logger.Interface
}

func NewLogTransport(logger logger.Interface) *LogTransport {
	return &LogTransport{logger: logger}
}

func (l *LogTransport) Send(_ context.Context, env *Envelope) error {
	l.logger.Infow("email delivered to log",
		"id", env.ID,
		"from", env.From,
		"to", env.To,
		"subject", env.Subject,
		"mailer", env.Mailer,
		"action", env.Action,
		"text", env.TextBody,
	)
	return nil
}
