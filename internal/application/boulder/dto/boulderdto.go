package dto

import (
	"time"

	"github.com/cragbase/cragbase/internal/domain/audit"
	"github.com/cragbase/cragbase/internal/domain/boulder"
)

type CreateBoulderRequest struct {
	Name string `json:"name"`
	// ImportID tags the audit entry with the import batch that produced it.
	ImportID *uint `json:"import_id,omitempty"`
}

// UpdateBoulderRequest applies only the fields that are set. LockVersion,
// when given, must match the stored version.
type UpdateBoulderRequest struct {
	Name        *string `json:"name,omitempty"`
	AreaID      *uint   `json:"area_id,omitempty"`
	LockVersion *int    `json:"lock_version,omitempty"`
	ImportID    *uint   `json:"import_id,omitempty"`
}

type BoulderResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	AreaID      uint      `json:"area_id"`
	LockVersion int       `json:"lock_version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListBouldersResponse struct {
	Items []*BoulderResponse `json:"items"`
	Total int64              `json:"total"`
}

type AuditResponse struct {
	ID             uint           `json:"id"`
	Action         string         `json:"action"`
	Version        int            `json:"version"`
	AuditedChanges map[string]any `json:"audited_changes"`
	AssociatedType string         `json:"associated_type,omitempty"`
	AssociatedID   *uint          `json:"associated_id,omitempty"`
	UserID         *uint          `json:"user_id,omitempty"`
	RemoteAddress  string         `json:"remote_address,omitempty"`
	RequestUUID    string         `json:"request_uuid,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func ToBoulderResponse(b *boulder.Boulder) *BoulderResponse {
	if b == nil {
		return nil
	}
	return &BoulderResponse{
		ID:          b.ID(),
		Name:        b.Name(),
		AreaID:      b.AreaID(),
		LockVersion: b.LockVersion(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func ToAuditResponse(a *audit.Audit) *AuditResponse {
	return &AuditResponse{
		ID:             a.ID(),
		Action:         string(a.Action()),
		Version:        a.Version(),
		AuditedChanges: a.Changes(),
		AssociatedType: a.AssociatedType(),
		AssociatedID:   a.AssociatedID(),
		UserID:         a.UserID(),
		RemoteAddress:  a.RemoteAddress(),
		RequestUUID:    a.RequestUUID(),
		CreatedAt:      a.CreatedAt(),
	}
}
