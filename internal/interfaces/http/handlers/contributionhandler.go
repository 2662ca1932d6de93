package handlers

import (
	"github.com/gin-gonic/gin"

	contributiondto "github.com/cragbase/cragbase/internal/application/contribution/dto"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type ContributionHandler struct {
	submitUC   submitContributionUseCase
	translator *i18n.Translator
	logger     logger.Interface
}

func NewContributionHandler(submitUC submitContributionUseCase, translator *i18n.Translator, logger logger.Interface) *ContributionHandler {
	return &ContributionHandler{
		submitUC:   submitUC,
		translator: translator,
		logger:     logger,
	}
}

// SubmitContribution handles POST /api/contributions
// @Summary Submit contribution
// @Description Send a contribution to the team for review
// @Tags Contributions
// @Accept json
// @Produce json
// @Param request body contributiondto.SubmitContributionRequest true "Contribution"
// @Success 201 {object} utils.APIResponse{data=contributiondto.SubmitContributionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /contributions [post]
func (h *ContributionHandler) SubmitContribution(c *gin.Context) {
	var req contributiondto.SubmitContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for contribution", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, localizedMessage(c.Request.Context(), h.translator,
		"contributions.submitted", "Thanks! Your contribution will be reviewed.", nil))
}
