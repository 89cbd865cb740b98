package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebsiteStatus classifies a business website.
type WebsiteStatus string

const (
	WebsiteStatusUnknown     WebsiteStatus = "unknown"
	WebsiteStatusValid       WebsiteStatus = "valid"
	WebsiteStatusInvalid     WebsiteStatus = "invalid"
	WebsiteStatusNeedsReview WebsiteStatus = "needs_review"
)

// IsValid checks if the WebsiteStatus is a known value.
func (s WebsiteStatus) IsValid() bool {
	switch s {
	case WebsiteStatusUnknown, WebsiteStatusValid, WebsiteStatusInvalid, WebsiteStatusNeedsReview:
		return true
	default:
		return false
	}
}

// Business is a scraped, deduplicated and scored lead. Rows are never deleted.
type Business struct {
	ID                 uuid.UUID       `json:"id"`
	ZoneID             *uuid.UUID      `json:"zone_id,omitempty"`
	ExternalID         string          `json:"external_id"` // Provider key, unique across all zones.
	Name               string          `json:"name"`
	Address            string          `json:"address"`
	Category           string          `json:"category"`
	Phone              string          `json:"phone,omitempty"`
	Email              string          `json:"email,omitempty"`
	Website            string          `json:"website,omitempty"`
	Rating             float64         `json:"rating"`
	ReviewCount        int             `json:"review_count"`
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	QualificationScore int             `json:"qualification_score"`
	Qualified          bool            `json:"qualified"`
	WebsiteStatus      WebsiteStatus   `json:"website_status"`
	RawPayload         json.RawMessage `json:"-"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
