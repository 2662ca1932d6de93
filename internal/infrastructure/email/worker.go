package email

import (
	"context"
	"errors"
	"time"

	"github.com/cragbase/cragbase/internal/shared/logger"
)

const (
	DefaultMaxAttempts = 3
	defaultPollTimeout = time.Second
	requeueTimeout     = 5 * time.Second
)

// Worker drains the delivery queue. A failed send is re-queued until it has
// been tried maxAttempts times, then dropped.
type Worker struct {
	queue       *Queue
	transport   Transport
	maxAttempts int
	pollTimeout time.Duration
	logger      logger.Interface
}

func NewWorker(queue *Queue, transport Transport, maxAttempts int, logger logger.Interface) *Worker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Worker{
		queue:       queue,
		transport:   transport,
		maxAttempts: maxAttempts,
		pollTimeout: defaultPollTimeout,
		logger:      logger,
	}
}

// Run processes envelopes until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Infow("mail delivery worker started", "max_attempts", w.maxAttempts)
	for {
		if ctx.Err() != nil {
			w.logger.Infow("mail delivery worker stopped")
			return
		}
		if _, err := w.ProcessOne(ctx); err != nil && ctx.Err() == nil {
			w.logger.Errorw("mail queue error", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(w.pollTimeout):
			}
		}
	}
}

// ProcessOne handles at most one envelope. It reports whether one was taken
// off the queue.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	env, err := w.queue.Dequeue(ctx, w.pollTimeout)
	if err != nil {
		return false, err
	}
	if env == nil {
		return false, nil
	}

	env.Attempts++
	sendErr := w.transport.Send(ctx, env)
	if sendErr == nil {
		w.logger.Infow("queued email delivered",
			"id", env.ID,
			"mailer", env.Mailer,
			"action", env.Action,
			"attempts", env.Attempts,
		)
		return true, nil
	}

	if errors.Is(sendErr, ErrEmailServiceNotConfigured) || env.Attempts >= w.maxAttempts {
		w.logger.Errorw("dropping email after failed delivery",
			"id", env.ID,
			"to", env.To,
			"subject", env.Subject,
			"attempts", env.Attempts,
			"error", sendErr,
		)
		return true, nil
	}

	w.logger.Warnw("email delivery failed, retrying",
		"id", env.ID,
		"attempts", env.Attempts,
		"max_attempts", w.maxAttempts,
		"error", sendErr,
	)
	// The worker may be shutting down; the retry must still reach the queue.
	requeueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requeueTimeout)
	defer cancel()
	if err := w.queue.Enqueue(requeueCtx, env); err != nil {
		w.logger.Errorw("failed to re-queue email", "id", env.ID, "error", err)
		return true, err
	}
	return true, nil
}
