package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mailerUsecases "github.com/cragbase/cragbase/internal/application/mailer/usecases"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type MailerHandler struct {
	sendTestEmailUC sendTestEmailUseCase
	translator      *i18n.Translator
	logger          logger.Interface
}

func NewMailerHandler(sendTestEmailUC sendTestEmailUseCase, translator *i18n.Translator, logger logger.Interface) *MailerHandler {
	return &MailerHandler{
		sendTestEmailUC: sendTestEmailUC,
		translator:      translator,
		logger:          logger,
	}
}

type SendTestEmailRequest struct {
	Later bool `json:"later"`
}

// SendTestEmail handles POST /api/admin/mailer/test. The body is optional.
// @Summary Send test email
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SendTestEmailRequest false "Delivery options"
// @Success 200 {object} utils.APIResponse{data=mailerUsecases.SendTestEmailResult}
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /admin/mailer/test [post]
func (h *MailerHandler) SendTestEmail(c *gin.Context) {
	var req SendTestEmailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for test email", "error", err)
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
			return
		}
	}

	result, err := h.sendTestEmailUC.Execute(c.Request.Context(), mailerUsecases.SendTestEmailCommand{Later: req.Later})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, localizedMessage(c.Request.Context(), h.translator, "admin.test_email_sent", "Test email sent", nil), result)
}
