package dto

import (
	"time"

	"github.com/cragbase/cragbase/internal/domain/area"
)

type CreateAreaRequest struct {
	Name string `json:"name" binding:"required"`
}

type AreaResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListAreasResponse struct {
	Items []*AreaResponse `json:"items"`
	Total int64           `json:"total"`
}

func ToAreaResponse(a *area.Area) *AreaResponse {
	if a == nil {
		return nil
	}
	return &AreaResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}
