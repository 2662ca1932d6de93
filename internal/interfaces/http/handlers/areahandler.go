package handlers

import (
	"github.com/gin-gonic/gin"

	areadto "github.com/cragbase/cragbase/internal/application/area/dto"
	areaUsecases "github.com/cragbase/cragbase/internal/application/area/usecases"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type AreaHandler struct {
	createAreaUC createAreaUseCase
	getAreaUC    getAreaUseCase
	listAreasUC  listAreasUseCase
	translator   *i18n.Translator
	logger       logger.Interface
}

func NewAreaHandler(
	createAreaUC createAreaUseCase,
	getAreaUC getAreaUseCase,
	listAreasUC listAreasUseCase,
	translator *i18n.Translator,
	logger logger.Interface,
) *AreaHandler {
	return &AreaHandler{
		createAreaUC: createAreaUC,
		getAreaUC:    getAreaUC,
		listAreasUC:  listAreasUC,
		translator:   translator,
		logger:       logger,
	}
}

// CreateArea handles POST /api/areas
// @Summary Create area
// @Description Create a climbing area
// @Tags Areas
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body areadto.CreateAreaRequest true "Area"
// @Success 201 {object} utils.APIResponse{data=areadto.AreaResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /areas [post]
func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req areadto.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create area", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createAreaUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, localizedMessage(c.Request.Context(), h.translator, "areas.created", "Area created", nil))
}

// GetArea handles GET /api/areas/:id
// @Summary Get area
// @Tags Areas
// @Produce json
// @Param id path int true "Area ID"
// @Success 200 {object} utils.APIResponse{data=areadto.AreaResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /areas/{id} [get]
func (h *AreaHandler) GetArea(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAreaUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

// ListAreas handles GET /api/areas
// @Summary List areas
// @Tags Areas
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /areas [get]
func (h *AreaHandler) ListAreas(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listAreasUC.Execute(c.Request.Context(), areaUsecases.ListAreasQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.PageSize)
}
