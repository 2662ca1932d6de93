package models

import (
	"time"

	"github.com/cragbase/cragbase/internal/shared/constants"
)

type AreaModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AreaModel) TableName() string {
	return constants.TableAreas
}
