// Package markdown renders user-submitted markdown into mail-safe HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	// ToHTMLSanitized converts markdown to HTML and strips anything not
	// allowed in user generated content.
	ToHTMLSanitized(markdown string) (string, error)
	// ToPlainText renders markdown and removes every tag, for text/plain parts.
	ToPlainText(markdown string) (string, error)
}

type service struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &service{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *service) render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *service) ToHTMLSanitized(markdown string) (string, error) {
	out, err := s.render(markdown)
	if err != nil {
		return "", err
	}
	return s.ugc.Sanitize(out), nil
}

func (s *service) ToPlainText(markdown string) (string, error) {
	out, err := s.render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(html.UnescapeString(s.strict.Sanitize(out))), nil
}
