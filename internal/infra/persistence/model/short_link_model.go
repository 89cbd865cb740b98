package model

import (
	"time"

	"github.com/google/uuid"
)

// ShortLinkModel mirrors the 'short_links' table. A partial unique index on
// (destination, link_type) WHERE active keeps one active link per destination.
type ShortLinkModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token         string    `gorm:"type:varchar(32);unique;not null"`
	Destination   string    `gorm:"type:text;not null"`
	LinkType      string    `gorm:"type:varchar(32);not null"`
	Active        bool      `gorm:"not null;default:true"`
	Clicks        int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	DeactivatedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShortLinkModel) TableName() string {
	return "short_links"
}
