package email

import (
	"context"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// Deliverer implements mailer.Deliverer on top of a Transport and an
// optional Queue.
type Deliverer struct {
	transport Transport
	queue     *Queue
	logger    logger.Interface
}

func NewDeliverer(transport Transport, queue *Queue, logger logger.Interface) *Deliverer {
	return &Deliverer{
		transport: transport,
		queue:     queue,
		logger:    logger,
	}
}

func (d *Deliverer) DeliverNow(ctx context.Context, msg *mailer.Message) error {
	env := NewEnvelope(msg)
	if err := d.transport.Send(ctx, env); err != nil {
		d.logger.Errorw("failed to deliver email",
			"id", env.ID,
			"mailer", env.Mailer,
			"action", env.Action,
			"error", err,
		)
		return err
	}

	d.logger.Infow("email delivered", "id", env.ID, "mailer", env.Mailer, "action", env.Action)
	return nil
}

// DeliverLater enqueues msg. Without a queue it falls back to DeliverNow.
func (d *Deliverer) DeliverLater(ctx context.Context, msg *mailer.Message) error {
	if d.queue == nil {
		d.logger.Warnw("no mail queue configured, delivering inline", "mailer", msg.Mailer, "action", msg.Action)
		return d.DeliverNow(ctx, msg)
	}

	env := NewEnvelope(msg)
	if err := d.queue.Enqueue(ctx, env); err != nil {
		d.logger.Errorw("failed to enqueue email", "id", env.ID, "error", err)
		return err
	}

	d.logger.Infow("email enqueued", "id", env.ID, "mailer", env.Mailer, "action", env.Action)
	return nil
}
