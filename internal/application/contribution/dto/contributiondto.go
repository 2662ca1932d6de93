package dto

import "time"

type SubmitContributionRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AreaID    uint   `json:"area_id"`
	BoulderID *uint  `json:"boulder_id,omitempty"`
	Message   string `json:"message"`
}

type SubmitContributionResponse struct {
	AreaID      uint      `json:"area_id"`
	BoulderID   *uint     `json:"boulder_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
