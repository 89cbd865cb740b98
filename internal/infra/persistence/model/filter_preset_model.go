package model

import (
	"time"

	"github.com/google/uuid"
)

// FilterPresetModel mirrors the 'filter_presets' table. Filter is the JSON encoded filter spec.
type FilterPresetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPublic  bool      `gorm:"not null;default:false"`
	Filter    []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FilterPresetModel) TableName() string {
	return "filter_presets"
}
