package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	areadto "github.com/cragbase/cragbase/internal/application/area/dto"
	"github.com/cragbase/cragbase/internal/interfaces/http/handlers/testutil"
	"github.com/cragbase/cragbase/internal/shared/errors"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

func newTestAreaHandler(t *testing.T, create *mockCreateAreaUC, get *mockGetAreaUC, list *mockListAreasUC) *AreaHandler {
	t.Helper()
	if create == nil {
		create = &mockCreateAreaUC{}
	}
	if get == nil {
		get = &mockGetAreaUC{}
	}
	if list == nil {
		list = &mockListAreasUC{}
	}
	return NewAreaHandler(create, get, list, newTestTranslator(t), logger.NewNop())
}

func TestAreaHandler_CreateArea(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockCreateAreaUC{result: &areadto.AreaResponse{ID: 1, Name: "Cuvier"}}
		h := newTestAreaHandler(t, uc, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/areas", map[string]any{"name": "Cuvier"})
		h.CreateArea(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Area created", resp.Message)
		assert.Equal(t, "Cuvier", uc.got.Name)
	})

	t.Run("missing name is rejected before the use case", func(t *testing.T) {
		uc := &mockCreateAreaUC{}
		h := newTestAreaHandler(t, uc, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/areas", map[string]any{})
		h.CreateArea(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, uc.got.Name)
	})

	t.Run("domain validation error keeps field details", func(t *testing.T) {
		uc := &mockCreateAreaUC{err: errors.NewFieldValidationError(errors.FieldError{Field: "name", Rule: errors.RuleMaxLength})}
		h := newTestAreaHandler(t, uc, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/areas", map[string]any{"name": "x"})
		h.CreateArea(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		require.Len(t, resp.Error.Fields, 1)
		assert.Equal(t, "name", resp.Error.Fields[0].Field)
	})
}

func TestAreaHandler_GetArea(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		uc       *mockGetAreaUC
		wantCode int
	}{
		{"found", "3", &mockGetAreaUC{result: &areadto.AreaResponse{ID: 3, Name: "Bas Cuvier"}}, http.StatusOK},
		{"not found", "3", &mockGetAreaUC{err: errors.NewNotFoundError("area not found")}, http.StatusNotFound},
		{"invalid id", "abc", &mockGetAreaUC{}, http.StatusBadRequest},
		{"zero id", "0", &mockGetAreaUC{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAreaHandler(t, nil, tt.uc, nil)

			c, w := testutil.NewTestContext(http.MethodGet, "/api/areas/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)
			h.GetArea(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestAreaHandler_ListAreas(t *testing.T) {
	uc := &mockListAreasUC{result: &areadto.ListAreasResponse{
		Items: []*areadto.AreaResponse{{ID: 1, Name: "Cuvier"}, {ID: 2, Name: "Apremont"}},
		Total: 12,
	}}
	h := newTestAreaHandler(t, nil, nil, uc)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/areas", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "5"})
	h.ListAreas(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, uc.got.Page)
	assert.Equal(t, 5, uc.got.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(12), list.Total)
	assert.Equal(t, 3, list.TotalPages)
}
