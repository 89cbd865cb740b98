package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteModel mirrors the 'sites' table.
type SiteModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Slug            string     `gorm:"type:varchar(255);unique;not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'preview'"`
	OwnerCustomerID *uuid.UUID `gorm:"type:uuid;index"`
	OwnershipTxID   *string    `gorm:"type:varchar(255)"`
	OwnedAt         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteModel) TableName() string {
	return "sites"
}

// CustomerModel mirrors the 'customers' table. Email is stored lower case.
type CustomerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName  string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedByTx  string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
