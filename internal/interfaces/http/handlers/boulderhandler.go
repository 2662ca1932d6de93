package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	boulderdto "github.com/cragbase/cragbase/internal/application/boulder/dto"
	boulderUsecases "github.com/cragbase/cragbase/internal/application/boulder/usecases"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

type BoulderHandler struct {
	createBoulderUC     createBoulderUseCase
	updateBoulderUC     updateBoulderUseCase
	deleteBoulderUC     deleteBoulderUseCase
	getBoulderUC        getBoulderUseCase
	listBouldersUC      listBouldersUseCase
	listBoulderAuditsUC listBoulderAuditsUseCase
	translator          *i18n.Translator
	logger              logger.Interface
}

func NewBoulderHandler(
	createBoulderUC createBoulderUseCase,
	updateBoulderUC updateBoulderUseCase,
	deleteBoulderUC deleteBoulderUseCase,
	getBoulderUC getBoulderUseCase,
	listBouldersUC listBouldersUseCase,
	listBoulderAuditsUC listBoulderAuditsUseCase,
	translator *i18n.Translator,
	logger logger.Interface,
) *BoulderHandler {
	return &BoulderHandler{
		createBoulderUC:     createBoulderUC,
		updateBoulderUC:     updateBoulderUC,
		deleteBoulderUC:     deleteBoulderUC,
		getBoulderUC:        getBoulderUC,
		listBouldersUC:      listBouldersUC,
		listBoulderAuditsUC: listBoulderAuditsUC,
		translator:          translator,
		logger:              logger,
	}
}

// CreateBoulder handles POST /api/areas/:id/boulders
// @Summary Create boulder
// @Description Create a boulder in an area
// @Tags Boulders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Area ID"
// @Param request body boulderdto.CreateBoulderRequest true "Boulder"
// @Success 201 {object} utils.APIResponse{data=boulderdto.BoulderResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /areas/{id}/boulders [post]
func (h *BoulderHandler) CreateBoulder(c *gin.Context) {
	areaID, err := utils.ParseUintParam(c, "id", "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req boulderdto.CreateBoulderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create boulder", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createBoulderUC.Execute(c.Request.Context(), boulderUsecases.CreateBoulderCommand{
		AreaID:               areaID,
		CreateBoulderRequest: req,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, localizedMessage(c.Request.Context(), h.translator, "boulders.created", "Boulder created", nil))
}

// UpdateBoulder handles PATCH /api/boulders/:id
// @Summary Update boulder
// @Description Rename or move a boulder; lock_version must match the stored one
// @Tags Boulders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Boulder ID"
// @Param request body boulderdto.UpdateBoulderRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=boulderdto.BoulderResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /boulders/{id} [patch]
func (h *BoulderHandler) UpdateBoulder(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "boulder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req boulderdto.UpdateBoulderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update boulder", "error", err, "id", id)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateBoulderUC.Execute(c.Request.Context(), boulderUsecases.UpdateBoulderCommand{
		ID:                   id,
		UpdateBoulderRequest: req,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, localizedMessage(c.Request.Context(), h.translator, "boulders.updated", "Boulder updated", nil), result)
}

// DeleteBoulder handles DELETE /api/boulders/:id. An optional ?import_id=
// tags the audit entry.
// @Summary Delete boulder
// @Tags Boulders
// @Produce json
// @Security Bearer
// @Param id path int true "Boulder ID"
// @Param import_id query int false "Import batch ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /boulders/{id} [delete]
func (h *BoulderHandler) DeleteBoulder(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "boulder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := boulderUsecases.DeleteBoulderCommand{ID: id}
	if raw := c.Query("import_id"); raw != "" {
		importID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || importID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid import_id"))
			return
		}
		v := uint(importID)
		cmd.ImportID = &v
	}

	if err := h.deleteBoulderUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, localizedMessage(c.Request.Context(), h.translator, "boulders.deleted", "Boulder deleted", nil), nil)
}

// GetBoulder handles GET /api/boulders/:id
// @Summary Get boulder
// @Tags Boulders
// @Produce json
// @Param id path int true "Boulder ID"
// @Success 200 {object} utils.APIResponse{data=boulderdto.BoulderResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /boulders/{id} [get]
func (h *BoulderHandler) GetBoulder(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "boulder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getBoulderUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListBoulders handles GET /api/areas/:id/boulders. The message carries the
// pluralized count in the request locale.
// @Summary List boulders of an area
// @Tags Boulders
// @Produce json
// @Param id path int true "Area ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /areas/{id}/boulders [get]
func (h *BoulderHandler) ListBoulders(c *gin.Context) {
	areaID, err := utils.ParseUintParam(c, "id", "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listBouldersUC.Execute(c.Request.Context(), boulderUsecases.ListBouldersQuery{
		AreaID:   areaID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := localizedMessage(c.Request.Context(), h.translator, "boulders.count", "", i18n.Options{i18n.KeyCount: result.Total})
	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.PageSize, msg)
}

// ListBoulderAudits handles GET /api/boulders/:id/audits
// @Summary List boulder audits
// @Tags Boulders
// @Produce json
// @Security Bearer
// @Param id path int true "Boulder ID"
// @Success 200 {object} utils.APIResponse{data=[]boulderdto.AuditResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /boulders/{id}/audits [get]
func (h *BoulderHandler) ListBoulderAudits(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "boulder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listBoulderAuditsUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
