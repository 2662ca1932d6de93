package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/cragbase/cragbase/internal/shared/constants"
)

type AuditModel struct {
	ID             uint   `gorm:"primarykey"`
	AuditableType  string `gorm:"size:50;not null;index:idx_audits_auditable,priority:1"`
	AuditableID    uint   `gorm:"not null;index:idx_audits_auditable,priority:2"`
	AssociatedType string `gorm:"size:50;index:idx_audits_associated,priority:1"`
	AssociatedID   *uint  `gorm:"index:idx_audits_associated,priority:2"`
	Action         string `gorm:"size:20;not null"`
	AuditedChanges datatypes.JSON
	Version        int    `gorm:"not null;default:0;index:idx_audits_auditable,priority:3"`
	UserID         *uint  `gorm:"index"`
	RemoteAddress  string `gorm:"size:64"`
	RequestUUID    string `gorm:"size:64;index"`
	CreatedAt      time.Time `gorm:"index"`
}

func (AuditModel) TableName() string {
	return constants.TableAudits
}
