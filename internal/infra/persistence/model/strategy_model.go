// Package model holds the GORM structs that mirror the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StrategyModel mirrors the 'strategies' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type StrategyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Region    string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(255);not null"`
	MinLat    float64   `gorm:"type:double precision;not null"`
	MinLng    float64   `gorm:"type:double precision;not null"`
	MaxLat    float64   `gorm:"type:double precision;not null"`
	MaxLng    float64   `gorm:"type:double precision;not null"`
	Rationale string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Zones []ZoneModel `gorm:"foreignKey:StrategyID"`
}

// TableName explicitly sets the table name for GORM.
func (StrategyModel) TableName() string {
	return "strategies"
}
