package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/i18n"
)

type LocaleMatcher interface {
	MatchLocale(acceptLanguage string) string
}

// Locale negotiates the request locale. An explicit ?locale= wins over the
// Accept-Language header; both are matched against the loaded locales.
func Locale(matcher LocaleMatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Query("locale")
		if requested == "" {
			requested = c.GetHeader(constants.HeaderAcceptLanguage)
		}
		locale := matcher.MatchLocale(requested)

		c.Set(constants.ContextKeyLocale, locale)
		c.Request = c.Request.WithContext(i18n.WithLocale(c.Request.Context(), locale))
		c.Header("Content-Language", locale)
		c.Next()
	}
}
