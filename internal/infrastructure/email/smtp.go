package email

import (
	"context"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type SMTPTransport struct {
	config sharedConfig.SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPTransport(config sharedConfig.SMTPConfig, logger logger.Interface) *SMTPTransport {
	var dialer *gomail.Dialer
	if config.Host != "" {
		dialer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	}

	return &SMTPTransport{
		config: config,
		dialer: dialer,
		logger: logger,
	}
}

func (s *SMTPTransport) Send(ctx context.Context, env *Envelope) error {
	if s.dialer == nil {
		s.logger.Warnw("smtp host is empty, cannot send email", "to", env.To, "subject", env.Subject)
		return ErrEmailServiceNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.dialer.DialAndSend(buildMessage(env))
}

func buildMessage(env *Envelope) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", env.From)
	m.SetHeader("To", env.To...)
	m.SetHeader("Subject", env.Subject)
	if env.ID != "" {
		m.SetHeader("X-Cragbase-Delivery", env.ID)
	}

	switch {
	case env.TextBody != "" && env.HTMLBody != "":
		m.SetBody("text/plain", env.TextBody)
		m.AddAlternative("text/html", env.HTMLBody)
	case env.HTMLBody != "":
		m.SetBody("text/html", env.HTMLBody)
	default:
		m.SetBody("text/plain", env.TextBody)
	}

	return m
}
