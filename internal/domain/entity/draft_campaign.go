package entity

import (
	"time"

	"github.com/google/uuid"
)

// DraftStatus is the review state of a draft campaign.
type DraftStatus string

const (
	DraftStatusPendingReview DraftStatus = "pending_review"
	DraftStatusPromoted      DraftStatus = "promoted"
	DraftStatusDiscarded     DraftStatus = "discarded"
)

// DraftCampaign stages newly qualified businesses of a draft-mode scrape until
// a reviewer promotes or discards it. Drafts are never promoted automatically.
type DraftCampaign struct {
	ID          uuid.UUID   `json:"id"`
	StrategyID  uuid.UUID   `json:"strategy_id"`
	ZoneID      uuid.UUID   `json:"zone_id"`
	Status      DraftStatus `json:"status"`
	BusinessIDs []uuid.UUID `json:"business_ids"`
	ReviewedBy  *uuid.UUID  `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time  `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
