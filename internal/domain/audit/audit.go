// Package audit records who changed which record, when and how.
package audit

import (
	"fmt"
	"time"
)

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDestroy:
		return true
	}
	return false
}

type Audit struct {
	id             uint
	auditableType  string
	auditableID    uint
	associatedType string
	associatedID   *uint
	action         Action
	changes        map[string]any
	version        int
	userID         *uint
	remoteAddress  string
	requestUUID    string
	createdAt      time.Time
}

func NewAudit(auditableType string, auditableID uint, action Action, changes map[string]any) (*Audit, error) {
	if auditableType == "" {
		return nil, fmt.Errorf("auditable type is required")
	}
	if auditableID == 0 {
		return nil, fmt.Errorf("auditable ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action %q", action)
	}
	if changes == nil {
		changes = map[string]any{}
	}

	return &Audit{
		auditableType: auditableType,
		auditableID:   auditableID,
		action:        action,
		changes:       changes,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructAudit(
	id uint,
	auditableType string,
	auditableID uint,
	associatedType string,
	associatedID *uint,
	action Action,
	changes map[string]any,
	version int,
	userID *uint,
	remoteAddress string,
	requestUUID string,
	createdAt time.Time,
) (*Audit, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit ID cannot be zero")
	}
	if changes == nil {
		changes = map[string]any{}
	}

	return &Audit{
		id:             id,
		auditableType:  auditableType,
		auditableID:    auditableID,
		associatedType: associatedType,
		associatedID:   associatedID,
		action:         action,
		changes:        changes,
		version:        version,
		userID:         userID,
		remoteAddress:  remoteAddress,
		requestUUID:    requestUUID,
		createdAt:      createdAt,
	}, nil
}

// AssociateWith links the entry to another record, such as an import batch.
func (a *Audit) AssociateWith(associatedType string, associatedID uint) {
	a.associatedType = associatedType
	a.associatedID = &associatedID
}

// SetActor copies request attribution onto the entry.
func (a *Audit) SetActor(actor Actor) {
	a.userID = actor.UserID
	a.remoteAddress = actor.RemoteAddress
	a.requestUUID = actor.RequestUUID
}

func (a *Audit) SetID(id uint)         { a.id = id }
func (a *Audit) SetVersion(version int) { a.version = version }

func (a *Audit) ID() uint                { return a.id }
func (a *Audit) AuditableType() string   { return a.auditableType }
func (a *Audit) AuditableID() uint       { return a.auditableID }
func (a *Audit) AssociatedType() string  { return a.associatedType }
func (a *Audit) AssociatedID() *uint     { return a.associatedID }
func (a *Audit) Action() Action          { return a.action }
func (a *Audit) Changes() map[string]any { return a.changes }
func (a *Audit) Version() int            { return a.version }
func (a *Audit) UserID() *uint           { return a.userID }
func (a *Audit) RemoteAddress() string   { return a.remoteAddress }
func (a *Audit) RequestUUID() string     { return a.requestUUID }
func (a *Audit) CreatedAt() time.Time    { return a.createdAt }

// IsAssociated reports whether the entry carries an association.
func (a *Audit) IsAssociated() bool {
	return a.associatedID != nil
}

// Diff returns, for every key whose value differs between before and after,
// a two-element [old, new] pair.
func Diff(before, after map[string]any) map[string]any {
	changes := make(map[string]any)
	for k, newVal := range after {
		oldVal, ok := before[k]
		if !ok || fmt.Sprint(oldVal) != fmt.Sprint(newVal) {
			changes[k] = []any{oldVal, newVal}
		}
	}
	for k, oldVal := range before {
		if _, ok := after[k]; !ok {
			changes[k] = []any{oldVal, nil}
		}
	}
	return changes
}
