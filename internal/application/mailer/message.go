package mailer

import (
	"context"
	"fmt"
)

// Message is a composed mail ready to be handed to a Deliverer.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
	Mailer   string
	Action   string
	Locale   string

	deliverer Deliverer
}

// Deliver sends the message before returning.
func (m *Message) Deliver(ctx context.Context) error {
	if m.deliverer == nil {
		return fmt.Errorf("message %s/%s has no deliverer", m.Mailer, m.Action)
	}
	return m.deliverer.DeliverNow(ctx, m)
}

// DeliverLater queues the message for the delivery worker.
func (m *Message) DeliverLater(ctx context.Context) error {
	if m.deliverer == nil {
		return fmt.Errorf("message %s/%s has no deliverer", m.Mailer, m.Action)
	}
	return m.deliverer.DeliverLater(ctx, m)
}
