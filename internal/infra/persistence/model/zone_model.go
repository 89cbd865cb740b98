package model

import (
	"time"

	"github.com/google/uuid"
)

// ZoneModel mirrors the 'zones' table. Summary holds the JSON encoded last scrape summary.
type ZoneModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StrategyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Category        string    `gorm:"type:varchar(255);not null"`
	MinLat          float64   `gorm:"type:double precision;not null"`
	MinLng          float64   `gorm:"type:double precision;not null"`
	MaxLat          float64   `gorm:"type:double precision;not null"`
	MaxLng          float64   `gorm:"type:double precision;not null"`
	Priority        int       `gorm:"not null;default:0"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts        int       `gorm:"not null;default:0"`
	LastError       string    `gorm:"type:text"`
	ScrapeStartedAt *time.Time
	LastScrapedAt   *time.Time
	Summary         []byte `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}
