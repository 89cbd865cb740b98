package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivationModel mirrors the 'activations' table. transaction_id is unique.
type ActivationModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TransactionID      string     `gorm:"type:varchar(255);unique;not null"`
	SiteID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerEmail      string     `gorm:"type:varchar(255);not null"`
	CustomerName       string     `gorm:"type:varchar(255)"`
	PaymentMethodToken string     `gorm:"type:varchar(255);not null"`
	Amount             int64      `gorm:"not null;default:0"`
	Currency           string     `gorm:"type:varchar(3)"`
	Status             string     `gorm:"type:varchar(20);not null;default:'processing';index"`
	FailureReason      string     `gorm:"type:text"`
	CustomerID         *uuid.UUID `gorm:"type:uuid"`
	SubscriptionID     *uuid.UUID `gorm:"type:uuid"`
	ShortLinkToken     string     `gorm:"type:varchar(32)"`
	Attempts           int        `gorm:"not null;default:0"`
	LockedUntil        *time.Time
	NotifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CompletedAt        *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivationModel) TableName() string {
	return "activations"
}
