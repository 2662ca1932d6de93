package mailer

import "context"

const (
	TestMailerName  = "test_mailer"
	TestEmailAction = "test_email"
	TestSubject     = "Test"
)

// TestMailer sends a fixed message to check that delivery works.
type TestMailer struct {
	base    *Base
	secrets SecretStore
}

func NewTestMailer(base *Base, secrets SecretStore) *TestMailer {
	return &TestMailer{base: base, secrets: secrets}
}

func (m *TestMailer) TestEmail(ctx context.Context) (*Message, error) {
	return m.base.Mail(ctx, MailOptions{
		To:      Recipients(m.secrets, ContributorEmailsPath...),
		Subject: TestSubject,
		Mailer:  TestMailerName,
		Action:  TestEmailAction,
	})
}
