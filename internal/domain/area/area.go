// Package area models a climbing area, the parent of many boulders.
package area

import (
	"fmt"
	"strings"
	"time"

	"github.com/cragbase/cragbase/internal/shared/validation"
)

type Area struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

type attributes struct {
	Name string `json:"name" validate:"required,max=255"`
}

func NewArea(name string) (*Area, error) {
	name = strings.TrimSpace(name)
	if err := validation.Struct(attributes{Name: name}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Area{
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructArea(id uint, name string, createdAt, updatedAt time.Time) (*Area, error) {
	if id == 0 {
		return nil, fmt.Errorf("area ID cannot be zero")
	}
	return &Area{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Area) ID() uint             { return a.id }
func (a *Area) Name() string         { return a.name }
func (a *Area) CreatedAt() time.Time { return a.createdAt }
func (a *Area) UpdatedAt() time.Time { return a.updatedAt }

// SetID is called by the repository after insert.
func (a *Area) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("area ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("area ID cannot be zero")
	}
	a.id = id
	return nil
}
