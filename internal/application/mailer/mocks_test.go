package mailer

import (
	"context"
	"strings"

	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/config"
)

type mockRenderer struct {
	RenderFunc func(ctx context.Context, view View) (*Rendered, error)
	views      []View
}

func (m *mockRenderer) Render(ctx context.Context, view View) (*Rendered, error) {
	m.views = append(m.views, view)
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, view)
	}
	return &Rendered{
		HTML: "<p>" + view.Mailer + "/" + view.Action + "</p>",
		Text: view.Mailer + "/" + view.Action,
	}, nil
}

type mockDeliverer struct {
	now   []*Message
	later []*Message
	err   error
}

func (m *mockDeliverer) DeliverNow(_ context.Context, msg *Message) error {
	m.now = append(m.now, msg)
	return m.err
}

func (m *mockDeliverer) DeliverLater(_ context.Context, msg *Message) error {
	m.later = append(m.later, msg)
	return m.err
}

// mapSecrets resolves dotted paths against a flat map.
type mapSecrets map[string]any

func (s mapSecrets) Dig(path ...string) any {
	return s[strings.Join(path, ".")]
}

type mockMarkdown struct{}

func (mockMarkdown) ToHTMLSanitized(md string) (string, error) { return "<p>" + md + "</p>", nil }
func (mockMarkdown) ToPlainText(md string) (string, error)     { return md, nil }

func testBrand() *brand.Brand {
	b, err := brand.New(config.BrandConfig{
		Name:    "Cragbase",
		URL:     "https://cragbase.test",
		Contact: config.BrandContactConfig{Email: "hello@cragbase.test"},
	})
	if err != nil {
		panic(err)
	}
	return b
}
