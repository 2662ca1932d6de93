package mailer

import (
	"context"
	"fmt"

	"github.com/cragbase/cragbase/internal/domain/contribution"
	"github.com/cragbase/cragbase/internal/shared/services/markdown"
)

const (
	ContributeMailerName       = "contribute_mailer"
	NewContributionEmailAction = "new_contribution_email"
	NewContributionSubject     = "New contribution"
)

// ContributionParams is what a contribution email is rendered from.
// AreaName and BoulderName are display names resolved by the caller.
type ContributionParams struct {
	Contribution *contribution.Contribution
	AreaName     string
	BoulderName  string
}

type ContributeMailer struct {
	base     *Base
	secrets  SecretStore
	markdown markdown.Service
}

func NewContributeMailer(base *Base, secrets SecretStore, md markdown.Service) *ContributeMailer {
	return &ContributeMailer{
		base:     base,
		secrets:  secrets,
		markdown: md,
	}
}

// NewContributionEmail notifies the editors about a contribution.
func (m *ContributeMailer) NewContributionEmail(ctx context.Context, params ContributionParams) (*Message, error) {
	c := params.Contribution

	messageHTML, err := m.markdown.ToHTMLSanitized(c.Message())
	if err != nil {
		return nil, fmt.Errorf("failed to render contribution message: %w", err)
	}
	messageText, err := m.markdown.ToPlainText(c.Message())
	if err != nil {
		return nil, fmt.Errorf("failed to render contribution message: %w", err)
	}

	contrib := map[string]any{
		"name":         c.Name(),
		"email":        c.Email(),
		"area_id":      c.AreaID(),
		"message":      c.Message(),
		"message_html": messageHTML,
		"message_text": messageText,
		"submitted_at": c.SubmittedAt().Format("2006-01-02 15:04 MST"),
	}
	if id := c.BoulderID(); id != nil {
		contrib["boulder_id"] = *id
	}

	return m.base.Mail(ctx, MailOptions{
		To:      Recipients(m.secrets, ContributorEmailsPath...),
		Subject: NewContributionSubject,
		Mailer:  ContributeMailerName,
		Action:  NewContributionEmailAction,
		Data: map[string]any{
			"contribution": contrib,
			"contributor":  c.Name(),
			"area":         params.AreaName,
			"boulder":      params.BoulderName,
		},
	})
}
