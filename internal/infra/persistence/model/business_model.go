package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. ExternalID is the provider key used for upserts.
type BusinessModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ZoneID             *uuid.UUID `gorm:"type:uuid;index"`
	ExternalID         string     `gorm:"type:varchar(255);unique;not null"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Address            string     `gorm:"type:text"`
	Category           string     `gorm:"type:varchar(255);index"`
	Phone              string     `gorm:"type:varchar(50)"`
	Email              string     `gorm:"type:varchar(255)"`
	Website            string     `gorm:"type:text"`
	Rating             float64    `gorm:"type:double precision;not null;default:0"`
	ReviewCount        int        `gorm:"not null;default:0"`
	Latitude           float64    `gorm:"type:double precision"`
	Longitude          float64    `gorm:"type:double precision"`
	QualificationScore int        `gorm:"not null;default:0"`
	Qualified          bool       `gorm:"not null;default:false"`
	WebsiteStatus      string     `gorm:"type:varchar(20);not null;default:'unknown';index"`
	RawPayload         []byte     `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
