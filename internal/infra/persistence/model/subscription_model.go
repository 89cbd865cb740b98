package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// The unique site_id keeps at most one subscription per site.
type SubscriptionModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SiteID                 uuid.UUID `gorm:"type:uuid;unique;not null"`
	CustomerID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderSubscriptionID string    `gorm:"type:varchar(255)"`
	Status                 string    `gorm:"type:varchar(20);not null;default:'pending'"`
	NextChargeAt           *time.Time
	FailureReason          string `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
