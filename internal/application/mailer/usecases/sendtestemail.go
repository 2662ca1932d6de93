package usecases

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type TestEmailComposer interface {
	TestEmail(ctx context.Context) (*mailer.Message, error)
}

type SendTestEmailCommand struct {
	// Later queues the mail instead of sending it inline.
	Later bool
}

type SendTestEmailResult struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Queued     bool     `json:"queued"`
}

type SendTestEmailUseCase struct {
	composer TestEmailComposer
	logger   logger.Interface
}

func NewSendTestEmailUseCase(composer TestEmailComposer, logger logger.Interface) *SendTestEmailUseCase {
	return &SendTestEmailUseCase{
		composer: composer,
		logger:   logger,
	}
}

func (uc *SendTestEmailUseCase) Execute(ctx context.Context, cmd SendTestEmailCommand) (*SendTestEmailResult, error) {
	msg, err := uc.composer.TestEmail(ctx)
	if err != nil {
		uc.logger.Warnw("failed to compose test email", "error", err)
		return nil, err
	}

	if cmd.Later {
		err = msg.DeliverLater(ctx)
	} else {
		err = msg.Deliver(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to deliver test email", "error", err, "to", msg.To)
		return nil, err
	}

	uc.logger.Infow("test email sent", "to", msg.To, "queued", cmd.Later)

	return &SendTestEmailResult{
		Recipients: msg.To,
		Subject:    msg.Subject,
		Queued:     cmd.Later,
	}, nil
}
