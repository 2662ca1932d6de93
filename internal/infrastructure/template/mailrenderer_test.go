package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// echoLookup renders "<locale>:<key>@<brand_name>" so tests can see which
// options reached the translator.
var echoLookup = i18n.LookupFunc(func(key string, opts i18n.Options) (string, error) {
	return fmt.Sprintf("%v:%s@%v", opts[i18n.KeyLocale], key, opts[i18n.KeyBrandName]), nil
})

func newTestRenderer(t *testing.T, lookup i18n.Lookup, overrides string) *MailRenderer {
	t.Helper()
	b, err := brand.New(config.BrandConfig{
		Name:    "Cragbase",
		Contact: config.BrandContactConfig{Email: "hello@cragbase.test"},
	})
	require.NoError(t, err)

	r := NewMailRenderer(i18n.NewTranslator(lookup, b), overrides, logger.NewNop())
	require.NoError(t, r.Load())
	return r
}

func TestMailRenderer_Load(t *testing.T) {
	r := newTestRenderer(t, echoLookup, filepath.Join(t.TempDir(), "missing"))

	for _, name := range []string{
		"layouts/mailer.html",
		"layouts/mailer.text",
		"contribute_mailer/new_contribution_email.html",
		"contribute_mailer/new_contribution_email.text",
		"test_mailer/test_email.html",
		"test_mailer/test_email.text",
	} {
		assert.True(t, r.HasTemplate(name), name)
	}
	assert.Len(t, r.LoadedTemplates(), 6)
}

func TestMailRenderer_RenderTestEmail(t *testing.T) {
	r := newTestRenderer(t, echoLookup, "")

	out, err := r.Render(context.Background(), mailer.View{
		Mailer: mailer.TestMailerName,
		Action: mailer.TestEmailAction,
		Layout: mailer.DefaultLayout,
		Locale: "fr",
	})
	require.NoError(t, err)

	assert.Contains(t, out.HTML, "<!DOCTYPE html>")
	assert.Contains(t, out.HTML, "fr:test_mailer.test_email.body@Cragbase")
	assert.Contains(t, out.HTML, "fr:mailer.footer@Cragbase")
	assert.Contains(t, out.Text, "fr:test_mailer.test_email.body@Cragbase")
	assert.NotContains(t, out.Text, "<p>")
}

func TestMailRenderer_RenderEscapesHTML(t *testing.T) {
	lookup := i18n.LookupFunc(func(key string, opts i18n.Options) (string, error) {
		if key == "contribute_mailer.new_contribution_email.intro" {
			return fmt.Sprintf("%v wrote", opts["contributor"]), nil
		}
		return key, nil
	})
	r := newTestRenderer(t, lookup, "")

	out, err := r.Render(context.Background(), mailer.View{
		Mailer: mailer.ContributeMailerName,
		Action: mailer.NewContributionEmailAction,
		Layout: mailer.DefaultLayout,
		Data: map[string]any{
			"contributor": "<b>Eve</b>",
			"area":        "Bleau",
			"boulder":     "",
			"contribution": map[string]any{
				"name":         "<b>Eve</b>",
				"email":        "eve@example.com",
				"message_html": "<p>sanitized</p>",
				"message_text": "sanitized",
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.HTML, "&lt;b&gt;Eve&lt;/b&gt; wrote")
	assert.Contains(t, out.HTML, "<p>sanitized</p>")
	assert.NotContains(t, out.HTML, "contribute_mailer.new_contribution_email.boulder")
	assert.Contains(t, out.Text, "<b>Eve</b> <eve@example.com>")
}

func TestMailRenderer_Overrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "test_mailer"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "test_mailer", "test_email.text.liquid"),
		[]byte("custom {{ brand_name }}"),
		0o600,
	))

	r := newTestRenderer(t, echoLookup, dir)

	out, err := r.Render(context.Background(), mailer.View{
		Mailer: mailer.TestMailerName,
		Action: mailer.TestEmailAction,
		Data:   map[string]any{"brand_name": "Cragbase"},
	})
	require.NoError(t, err)
	assert.Equal(t, "custom Cragbase", out.Text)
	assert.Contains(t, out.HTML, "test_mailer.test_email.body")
}

func TestMailRenderer_Errors(t *testing.T) {
	t.Run("unknown view", func(t *testing.T) {
		r := newTestRenderer(t, echoLookup, "")
		_, err := r.Render(context.Background(), mailer.View{Mailer: "nope", Action: "nothing"})
		assert.Error(t, err)
	})

	t.Run("translation failure", func(t *testing.T) {
		failing := i18n.LookupFunc(func(string, i18n.Options) (string, error) {
			return "", fmt.Errorf("translation missing")
		})
		r := newTestRenderer(t, failing, "")
		_, err := r.Render(context.Background(), mailer.View{
			Mailer: mailer.TestMailerName,
			Action: mailer.TestEmailAction,
		})
		assert.Error(t, err)
	})
}

func TestMailRenderer_LocaleFromContext(t *testing.T) {
	r := newTestRenderer(t, echoLookup, "")
	ctx := i18n.WithLocale(context.Background(), "de")

	out, err := r.Render(ctx, mailer.View{Mailer: mailer.TestMailerName, Action: mailer.TestEmailAction})
	require.NoError(t, err)
	assert.Contains(t, out.Text, "de:test_mailer.test_email.body")
}
