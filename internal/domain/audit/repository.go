package audit

import "context"

type Repository interface {
	// Create assigns the next version number for the audited record and
	// inserts the entry.
	Create(ctx context.Context, a *Audit) error
	ListForAuditable(ctx context.Context, auditableType string, auditableID uint) ([]*Audit, error)
}
