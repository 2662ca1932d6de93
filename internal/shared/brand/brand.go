// Package brand holds the product's display identity. A Brand is built once
// from configuration at startup and never changes afterwards, so it can be
// shared between goroutines without locking.
package brand

import (
	"fmt"

	"github.com/cragbase/cragbase/internal/shared/config"
)

type Contact struct {
	email   string
	website string
}

func (c Contact) Email() string   { return c.email }
func (c Contact) Website() string { return c.website }

type Brand struct {
	name    string
	url     string
	contact Contact
}

// New builds a Brand from configuration. name and contact email are required
// because every outgoing mail uses them as its sender.
func New(cfg config.BrandConfig) (*Brand, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("brand name is required")
	}
	if cfg.Contact.Email == "" {
		return nil, fmt.Errorf("brand contact email is required")
	}

	return &Brand{
		name: cfg.Name,
		url:  cfg.URL,
		contact: Contact{
			email:   cfg.Contact.Email,
			website: cfg.Contact.Website,
		},
	}, nil
}

func (b *Brand) Name() string     { return b.name }
func (b *Brand) URL() string      { return b.url }
func (b *Brand) Contact() Contact { return b.contact }

// Sender formats the default From header: "Name <email>".
func (b *Brand) Sender() string {
	return fmt.Sprintf("%s <%s>", b.name, b.contact.email)
}
