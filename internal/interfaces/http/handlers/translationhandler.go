package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	apperrors "github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type TranslationHandler struct {
	translator *i18n.Translator
	logger     logger.Interface
}

func NewTranslationHandler(translator *i18n.Translator, logger logger.Interface) *TranslationHandler {
	return &TranslationHandler{
		translator: translator,
		logger:     logger,
	}
}

type TranslationResponse struct {
	Key    string `json:"key"`
	Locale string `json:"locale"`
	Value  string `json:"value"`
}

// reservedQueryOptions are lookup options a caller may not set through the
// query string. The locale comes from the locale middleware.
var reservedQueryOptions = map[string]bool{
	i18n.KeyDefault: true,
	i18n.KeyLocale:  true,
}

// Translate handles GET /api/translations/*key. Query parameters become
// interpolation options; count is parsed as an integer.
// @Summary Look up a translation
// @Tags Translations
// @Produce json
// @Param key path string true "Translation key, dots or slashes"
// @Param count query int false "Plural count"
// @Success 200 {object} utils.APIResponse{data=TranslationResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /translations/{key} [get]
func (h *TranslationHandler) Translate(c *gin.Context) {
	key := strings.Trim(c.Param("key"), "/")
	key = strings.ReplaceAll(key, "/", ".")
	if key == "" {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("translation key is required"))
		return
	}

	opts := i18n.Options{}
	for name, values := range c.Request.URL.Query() {
		if len(values) == 0 || reservedQueryOptions[name] {
			continue
		}
		opts[name] = values[0]
	}
	if raw, ok := opts[i18n.KeyCount].(string); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("count must be an integer"))
			return
		}
		opts[i18n.KeyCount] = n
	}

	tr := h.translator.FromContext(c.Request.Context())
	value, err := tr.T(key, opts)
	if err != nil {
		if errors.Is(err, locale.ErrMissingTranslation) {
			utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("translation not found", key))
			return
		}
		h.logger.Errorw("failed to translate", "key", key, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TranslationResponse{
		Key:    key,
		Locale: i18n.LocaleFromContext(c.Request.Context()),
		Value:  value,
	})
}
