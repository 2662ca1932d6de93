// Package boulder models a named climbing boulder that belongs to an area.
package boulder

import (
	"fmt"
	"strings"
	"time"

	"github.com/cragbase/cragbase/internal/shared/validation"
)

// MaxNameLength is counted in characters, not bytes.
const MaxNameLength = 255

type Boulder struct {
	id          uint
	name        string
	areaID      uint
	lockVersion int
	createdAt   time.Time
	updatedAt   time.Time

	// importID correlates the next audited mutation with an import batch.
	// It is never stored on the boulder row.
	importID *uint
}

type attributes struct {
	Name string `json:"name" validate:"omitempty,max=255"`
}

// NewBoulder builds an unsaved boulder. Construction never validates;
// call Validate before saving.
func NewBoulder(name string, areaID uint) *Boulder {
	now := time.Now().UTC()
	return &Boulder{
		name:      name,
		areaID:    areaID,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBoulder(
	id uint,
	name string,
	areaID uint,
	lockVersion int,
	createdAt, updatedAt time.Time,
) (*Boulder, error) {
	if id == 0 {
		return nil, fmt.Errorf("boulder ID cannot be zero")
	}
	if lockVersion < 0 {
		return nil, fmt.Errorf("lock version cannot be negative")
	}

	return &Boulder{
		id:          id,
		name:        name,
		areaID:      areaID,
		lockVersion: lockVersion,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// Validate checks the record before it is saved. A blank name is allowed;
// a name longer than MaxNameLength characters fails with a field error on
// "name" whose rule is max_length.
func (b *Boulder) Validate() error {
	return validation.Struct(attributes{Name: b.name})
}

func (b *Boulder) ID() uint             { return b.id }
func (b *Boulder) Name() string         { return b.name }
func (b *Boulder) AreaID() uint         { return b.areaID }
func (b *Boulder) LockVersion() int     { return b.lockVersion }
func (b *Boulder) CreatedAt() time.Time { return b.createdAt }
func (b *Boulder) UpdatedAt() time.Time { return b.updatedAt }

// HasName reports whether the boulder has a non-blank name.
func (b *Boulder) HasName() bool {
	return strings.TrimSpace(b.name) != ""
}

func (b *Boulder) Rename(name string) {
	if b.name == name {
		return
	}
	b.name = name
	b.updatedAt = time.Now().UTC()
}

func (b *Boulder) MoveToArea(areaID uint) error {
	if areaID == 0 {
		return fmt.Errorf("area ID cannot be zero")
	}
	if b.areaID == areaID {
		return nil
	}
	b.areaID = areaID
	b.updatedAt = time.Now().UTC()
	return nil
}

// SetImport tags the next create, update or destroy with an import batch.
func (b *Boulder) SetImport(importID uint) {
	b.importID = &importID
}

// ImportID returns the pending import correlation, if any.
func (b *Boulder) ImportID() (uint, bool) {
	if b.importID == nil {
		return 0, false
	}
	return *b.importID, true
}

// ClearImport drops the import correlation once a mutation has consumed it.
func (b *Boulder) ClearImport() {
	b.importID = nil
}

// SetID is called by the repository after insert.
func (b *Boulder) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("boulder ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("boulder ID cannot be zero")
	}
	b.id = id
	return nil
}

// SetLockVersion is called by the repository after a successful write.
func (b *Boulder) SetLockVersion(v int) {
	b.lockVersion = v
}

// PersistedState is the part of a boulder assigned by the store on write.
type PersistedState struct {
	id          uint
	lockVersion int
}

// PersistedState captures the id and lock version before a write.
func (b *Boulder) PersistedState() PersistedState {
	return PersistedState{id: b.id, lockVersion: b.lockVersion}
}

// RestorePersistedState undoes store-assigned changes after a rolled back write.
func (b *Boulder) RestorePersistedState(s PersistedState) {
	b.id = s.id
	b.lockVersion = s.lockVersion
}

// AuditedAttributes returns the attributes recorded in audit entries.
// Identity, timestamps and the lock version are left out.
func (b *Boulder) AuditedAttributes() map[string]any {
	return map[string]any{
		"name":    b.name,
		"area_id": b.areaID,
	}
}
