package models

import (
	"time"

	"github.com/cragbase/cragbase/internal/shared/constants"
)

// BoulderModel has no import column; import correlation lives on audits.
type BoulderModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"size:255;not null;default:''"`
	AreaID      uint   `gorm:"not null;index:idx_boulders_area_name,priority:1"`
	NameKey     string `gorm:"size:255;not null;default:'';index:idx_boulders_area_name,priority:2"`
	LockVersion int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BoulderModel) TableName() string {
	return constants.TableBoulders
}
