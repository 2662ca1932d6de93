// Package i18n exposes the application's translation entry point. Every
// lookup goes through a Translator, which makes the brand name available to
// all messages as the brand_name variable without call sites passing it.
package i18n

import (
	"github.com/cragbase/cragbase/internal/shared/brand"
)

// Reserved option keys understood by the localization engine.
const (
	KeyBrandName = "brand_name"
	KeyLocale    = "locale"
	KeyCount     = "count"
	KeyDefault   = "default"
)

// Options carries interpolation variables and lookup controls.
type Options map[string]any

// Lookup resolves a message key to a display string.
type Lookup interface {
	Lookup(key string, opts Options) (string, error)
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc func(key string, opts Options) (string, error)

func (f LookupFunc) Lookup(key string, opts Options) (string, error) {
	return f(key, opts)
}

// Translator decorates a Lookup with brand-aware defaults.
type Translator struct {
	lookup    Lookup
	brandName string
	locale    string
}

func NewTranslator(lookup Lookup, b *brand.Brand) *Translator {
	return &Translator{
		lookup:    lookup,
		brandName: b.Name(),
	}
}

// T translates key. brand_name defaults to the configured brand name; a value
// supplied by the caller always wins. Errors from the underlying lookup are
// returned unchanged.
func (t *Translator) T(key string, opts Options) (string, error) {
	defaults := Options{KeyBrandName: t.brandName}
	if t.locale != "" {
		defaults[KeyLocale] = t.locale
	}
	return t.lookup.Lookup(key, ReverseMerge(opts, defaults))
}

// Translate is the long form of T.
func (t *Translator) Translate(key string, opts Options) (string, error) {
	return t.T(key, opts)
}

// ForLocale returns a Translator whose lookups default to locale.
func (t *Translator) ForLocale(locale string) *Translator {
	return &Translator{
		lookup:    t.lookup,
		brandName: t.brandName,
		locale:    locale,
	}
}

// Locale reports the locale this translator is pinned to, if any.
func (t *Translator) Locale() string {
	return t.locale
}

// ReverseMerge returns a new Options holding every entry of opts plus each
// entry of defaults whose key opts does not define. Neither input is modified.
func ReverseMerge(opts, defaults Options) Options {
	merged := make(Options, len(opts)+len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range opts {
		merged[k] = v
	}
	return merged
}
