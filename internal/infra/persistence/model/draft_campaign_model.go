package model

import (
	"time"

	"github.com/google/uuid"
)

// DraftCampaignModel mirrors the 'draft_campaigns' table. BusinessIDs is a JSON array of UUIDs.
type DraftCampaignModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StrategyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ZoneID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending_review'"`
	BusinessIDs []byte     `gorm:"type:jsonb;not null"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt  *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DraftCampaignModel) TableName() string {
	return "draft_campaigns"
}
