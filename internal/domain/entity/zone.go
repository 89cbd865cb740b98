package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ZoneStatus is the scraping state of a single zone.
type ZoneStatus string

const (
	ZoneStatusPending    ZoneStatus = "pending"
	ZoneStatusInProgress ZoneStatus = "in_progress"
	ZoneStatusCompleted  ZoneStatus = "completed"
	ZoneStatusFailed     ZoneStatus = "failed"
)

// IsValid checks if the ZoneStatus is a known value.
func (s ZoneStatus) IsValid() bool {
	switch s {
	case ZoneStatusPending, ZoneStatusInProgress, ZoneStatusCompleted, ZoneStatusFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is an allowed edge from s.
// in_progress -> pending is only taken by the stale sweep.
func (s ZoneStatus) CanTransitionTo(next ZoneStatus) bool {
	switch s {
	case ZoneStatusPending:
		return next == ZoneStatusInProgress
	case ZoneStatusInProgress:
		return next == ZoneStatusCompleted || next == ZoneStatusFailed || next == ZoneStatusPending
	case ZoneStatusFailed:
		return next == ZoneStatusPending
	default:
		return false
	}
}

// ScrapeMode selects what happens to newly qualified businesses after a scrape.
type ScrapeMode string

const (
	// ScrapeModeDraft stages results as a DraftCampaign for manual review.
	ScrapeModeDraft ScrapeMode = "draft"
	// ScrapeModeLive hands results directly to outreach.
	ScrapeModeLive ScrapeMode = "live"
)

// IsValid checks if the ScrapeMode is a known value.
func (m ScrapeMode) IsValid() bool {
	return m == ScrapeModeDraft || m == ScrapeModeLive
}

// Zone is a geographic sub-area of a strategy, scraped as a unit.
type Zone struct {
	ID              uuid.UUID    `json:"id"`
	StrategyID      uuid.UUID    `json:"strategy_id"`
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Bounds          orb.Bound    `json:"bounds"`
	Priority        int          `json:"priority"`
	Status          ZoneStatus   `json:"status"`
	Attempts        int          `json:"attempts"`
	LastError       string       `json:"last_error,omitempty"`
	ScrapeStartedAt *time.Time   `json:"scrape_started_at,omitempty"`
	LastScrapedAt   *time.Time   `json:"last_scraped_at,omitempty"`
	Summary         *ZoneSummary `json:"summary,omitempty"` // Overwritten by every completed run.
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Center returns the center point of the zone.
func (z *Zone) Center() orb.Point {
	return z.Bounds.Center()
}

// RadiusMeters returns the distance from the center to the farthest corner.
func (z *Zone) RadiusMeters() float64 {
	return geo.Distance(z.Bounds.Center(), z.Bounds.Max)
}

// ZoneSummary holds the aggregate counts of the last completed scrape.
type ZoneSummary struct {
	Total              int       `json:"total"`
	Qualified          int       `json:"qualified"`
	WebsiteValid       int       `json:"website_valid"`
	WebsiteInvalid     int       `json:"website_invalid"`
	WebsiteNeedsReview int       `json:"website_needs_review"`
	WebsiteUnknown     int       `json:"website_unknown"`
	NewBusinesses      int       `json:"new_businesses"`
	NewlyQualified     int       `json:"newly_qualified"`
	ScrapedAt          time.Time `json:"scraped_at"`
}

// Record adds one business to the summary counts.
func (s *ZoneSummary) Record(b *Business) {
	s.Total++
	if b.Qualified {
		s.Qualified++
	}

	switch b.WebsiteStatus {
	case WebsiteStatusValid:
		s.WebsiteValid++
	case WebsiteStatusInvalid:
		s.WebsiteInvalid++
	case WebsiteStatusNeedsReview:
		s.WebsiteNeedsReview++
	default:
		s.WebsiteUnknown++
	}
}
