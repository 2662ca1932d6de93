package i18n

import "context"

type localeKey struct{}

// WithLocale stores the request locale in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored by WithLocale, or "".
func LocaleFromContext(ctx context.Context) string {
	if l, ok := ctx.Value(localeKey{}).(string); ok {
		return l
	}
	return ""
}

// FromContext pins t to the locale carried by ctx, when there is one.
func (t *Translator) FromContext(ctx context.Context) *Translator {
	if l := LocaleFromContext(ctx); l != "" {
		return t.ForLocale(l)
	}
	return t
}
