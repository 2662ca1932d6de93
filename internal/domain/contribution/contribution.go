// Package contribution models a visitor's suggestion for an area or boulder.
// Contributions are mailed to the editors and never stored.
package contribution

import (
	"strings"
	"time"

	"github.com/cragbase/cragbase/internal/shared/validation"
)

const MaxMessageLength = 10000

type Contribution struct {
	name        string
	email       string
	areaID      uint
	boulderID   *uint
	message     string
	submittedAt time.Time
}

type attributes struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	AreaID  uint   `json:"area_id" validate:"required"`
	Message string `json:"message" validate:"required,max=10000"`
}

func NewContribution(name, email string, areaID uint, boulderID *uint, message string) (*Contribution, error) {
	c := &Contribution{
		name:        strings.TrimSpace(name),
		email:       strings.TrimSpace(email),
		areaID:      areaID,
		boulderID:   boulderID,
		message:     strings.TrimSpace(message),
		submittedAt: time.Now().UTC(),
	}

	if err := validation.Struct(attributes{
		Name:    c.name,
		Email:   c.email,
		AreaID:  c.areaID,
		Message: c.message,
	}); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Contribution) Name() string           { return c.name }
func (c *Contribution) Email() string          { return c.email }
func (c *Contribution) AreaID() uint           { return c.areaID }
func (c *Contribution) BoulderID() *uint       { return c.boulderID }
func (c *Contribution) Message() string        { return c.message }
func (c *Contribution) SubmittedAt() time.Time { return c.submittedAt }
