package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

const enYAML = `
en:
  greeting: "Welcome to {{ brand_name }}"
  plain: "No variables here"
  boulders:
    count:
      zero: "No boulders"
      one: "One boulder"
      other: "{{ count }} boulders"
  mailer:
    footer: "Sent by {{ brand_name }}"
`

const frYAML = `
fr:
  greeting: "Bienvenue sur {{ brand_name }}"
  boulders:
    count:
      one: "{{ count }} bloc"
      other: "{{ count }} blocs"
`

func writeLocales(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	dir := writeLocales(t, map[string]string{"en.yml": enYAML, "fr.yml": frYAML})
	c, err := NewCatalog(dir, "en", logger.NewNop())
	require.NoError(t, err)
	return c
}

func TestCatalog_Lookup(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name string
		key  string
		opts i18n.Options
		want string
	}{
		{"interpolates variables", "greeting", i18n.Options{"brand_name": "Cragbase"}, "Welcome to Cragbase"},
		{"plain message", "plain", nil, "No variables here"},
		{"nested key", "mailer.footer", i18n.Options{"brand_name": "Cragbase"}, "Sent by Cragbase"},
		{"requested locale", "greeting", i18n.Options{"locale": "fr", "brand_name": "Cragbase"}, "Bienvenue sur Cragbase"},
		{"locale as tag", "greeting", i18n.Options{"locale": language.French, "brand_name": "X"}, "Bienvenue sur X"},
		{"regional variant matches base", "greeting", i18n.Options{"locale": "fr-CA", "brand_name": "X"}, "Bienvenue sur X"},
		{"falls back to default locale", "plain", i18n.Options{"locale": "fr"}, "No variables here"},
		{"unknown locale uses default", "plain", i18n.Options{"locale": "ja"}, "No variables here"},
		{"default option", "missing.key", i18n.Options{"default": "Fallback {{ brand_name }}", "brand_name": "B"}, "Fallback B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Lookup(tt.key, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_LookupDefaultIsNotATemplate(t *testing.T) {
	c := newTestCatalog(t)

	loop := "{% for i in (1..2000000) %}{{ i }}{% endfor %}"
	got, err := c.Lookup("missing.key", i18n.Options{"default": loop})
	require.NoError(t, err)
	assert.Equal(t, "{% for i in (1..2000000) %}{% endfor %}", got)

	got, err = c.Lookup("missing.key", i18n.Options{"default": "{{ name | upcase }} and {{name}}", "name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "{{ name | upcase }} and ada", got)
}

func TestCatalog_LookupPlural(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name   string
		locale string
		count  any
		want   string
	}{
		{"explicit zero", "en", 0, "No boulders"},
		{"english one", "en", 1, "One boulder"},
		{"english other", "en", 5, "5 boulders"},
		{"french zero is one", "fr", 0, "0 bloc"},
		{"french other", "fr", 2, "2 blocs"},
		{"missing count uses other", "en", nil, " boulders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := i18n.Options{"locale": tt.locale}
			if tt.count != nil {
				opts["count"] = tt.count
			}
			got, err := c.Lookup("boulders.count", opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_MissingTranslation(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Lookup("does.not.exist", i18n.Options{"locale": "fr"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTranslation)
	assert.Contains(t, err.Error(), "fr.does.not.exist")
}

func TestCatalog_MatchLocale(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, "fr", c.MatchLocale("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", c.MatchLocale("de-DE"))
	assert.Equal(t, "en", c.MatchLocale(""))
	assert.Equal(t, []string{"en", "fr"}, c.Locales())
	assert.Equal(t, "en", c.DefaultLocale())
}

func TestCatalog_Reload(t *testing.T) {
	dir := writeLocales(t, map[string]string{"en.yml": "en:\n  hello: \"Hello\"\n"})
	c, err := NewCatalog(dir, "en", logger.NewNop())
	require.NoError(t, err)

	got, err := c.Lookup("hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yml"), []byte("en:\n  hello: \"Hi\"\n"), 0o600))
	require.NoError(t, c.Reload())

	got, err = c.Lookup("hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)
}

func TestNewCatalog_Errors(t *testing.T) {
	t.Run("invalid default locale", func(t *testing.T) {
		_, err := NewCatalog(t.TempDir(), "not a locale!", logger.NewNop())
		assert.Error(t, err)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewCatalog(filepath.Join(t.TempDir(), "absent"), "en", logger.NewNop())
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := writeLocales(t, map[string]string{"en.yml": "en: [unclosed"})
		_, err := NewCatalog(dir, "en", logger.NewNop())
		assert.Error(t, err)
	})
}

func TestTranslatorWithCatalog(t *testing.T) {
	c := newTestCatalog(t)
	tr := i18n.NewTranslator(c, mustBrand(t))

	got, err := tr.T("greeting", nil)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Cragbase", got)

	got, err = tr.ForLocale("fr").Translate("greeting", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bienvenue sur Cragbase", got)

	_, err = tr.T("nope", nil)
	assert.ErrorIs(t, err, ErrMissingTranslation)
}

func mustBrand(t *testing.T) *brand.Brand {
	t.Helper()
	b, err := brand.New(config.BrandConfig{
		Name:    "Cragbase",
		Contact: config.BrandContactConfig{Email: "hello@cragbase.test"},
	})
	require.NoError(t, err)
	return b
}
