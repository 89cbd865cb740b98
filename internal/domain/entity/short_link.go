package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShortLink maps an opaque token to a destination URL. At most one active link
// exists per (destination, link type).
type ShortLink struct {
	ID            uuid.UUID  `json:"id"`
	Token         string     `json:"token"`
	Destination   string     `json:"destination"`
	LinkType      string     `json:"link_type"`
	Active        bool       `json:"active"`
	Clicks        int64      `json:"clicks"`
	CreatedAt     time.Time  `json:"created_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}
