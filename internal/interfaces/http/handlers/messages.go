package handlers

import (
	"context"

	"github.com/cragbase/cragbase/internal/shared/i18n"
)

// localizedMessage translates a success message for the request locale.
// A missing key falls back to the given English text.
func localizedMessage(ctx context.Context, tr *i18n.Translator, key, fallback string, opts i18n.Options) string {
	if tr == nil {
		return fallback
	}
	msg, err := tr.FromContext(ctx).T(key, i18n.ReverseMerge(opts, i18n.Options{i18n.KeyDefault: fallback}))
	if err != nil {
		return fallback
	}
	return msg
}
