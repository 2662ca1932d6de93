package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

type stubRenderer struct{}

func (stubRenderer) Render(context.Context, mailer.View) (*mailer.Rendered, error) {
	return &mailer.Rendered{HTML: "<p>ok</p>", Text: "ok"}, nil
}

type recordingDeliverer struct {
	now, later int
	err        error
}

func (d *recordingDeliverer) DeliverNow(context.Context, *mailer.Message) error {
	d.now++
	return d.err
}

func (d *recordingDeliverer) DeliverLater(context.Context, *mailer.Message) error {
	d.later++
	return d.err
}

type staticSecrets struct{ value any }

func (s staticSecrets) Dig(...string) any { return s.value }

func newTestMailer(t *testing.T, recipients any, d mailer.Deliverer) *mailer.TestMailer {
	t.Helper()
	b, err := brand.New(config.BrandConfig{
		Name:    "Cragbase",
		Contact: config.BrandContactConfig{Email: "hello@cragbase.test"},
	})
	require.NoError(t, err)
	base := mailer.NewBase(b, stubRenderer{}, d, logger.NewNop())
	return mailer.NewTestMailer(base, staticSecrets{value: recipients})
}

func TestSendTestEmailUseCase_Execute(t *testing.T) {
	t.Run("delivers inline", func(t *testing.T) {
		d := &recordingDeliverer{}
		uc := NewSendTestEmailUseCase(newTestMailer(t, "ops@cragbase.test", d), logger.NewNop())

		res, err := uc.Execute(context.Background(), SendTestEmailCommand{})
		require.NoError(t, err)
		assert.Equal(t, []string{"ops@cragbase.test"}, res.Recipients)
		assert.Equal(t, "Test", res.Subject)
		assert.False(t, res.Queued)
		assert.Equal(t, 1, d.now)
		assert.Zero(t, d.later)
	})

	t.Run("queues when asked", func(t *testing.T) {
		d := &recordingDeliverer{}
		uc := NewSendTestEmailUseCase(newTestMailer(t, "ops@cragbase.test", d), logger.NewNop())

		res, err := uc.Execute(context.Background(), SendTestEmailCommand{Later: true})
		require.NoError(t, err)
		assert.True(t, res.Queued)
		assert.Equal(t, 1, d.later)
	})

	t.Run("no recipients", func(t *testing.T) {
		d := &recordingDeliverer{}
		uc := NewSendTestEmailUseCase(newTestMailer(t, nil, d), logger.NewNop())

		_, err := uc.Execute(context.Background(), SendTestEmailCommand{})
		assert.ErrorIs(t, err, mailer.ErrNoRecipients)
		assert.Zero(t, d.now)
	})

	t.Run("delivery failure", func(t *testing.T) {
		d := &recordingDeliverer{err: errors.New("smtp down")}
		uc := NewSendTestEmailUseCase(newTestMailer(t, "ops@cragbase.test", d), logger.NewNop())

		_, err := uc.Execute(context.Background(), SendTestEmailCommand{})
		assert.EqualError(t, err, "smtp down")
	})
}
