package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
)

// ZoneResult is the outcome of one completed zone scrape.
type ZoneResult struct {
	Zone              *entity.Zone       `json:"zone"`
	Summary           entity.ZoneSummary `json:"summary"`
	NewlyQualified    []uuid.UUID        `json:"newly_qualified"`
	DraftID           *uuid.UUID         `json:"draft_id,omitempty"`
	OutreachPublished bool               `json:"outreach_published"`
	OutreachError     string             `json:"outreach_error,omitempty"`
}

// ZoneUsecase defines the interface for zone scraping use cases
type ZoneUsecase interface {
	// ScrapeZone claims a pending zone, scrapes and qualifies its businesses and completes it
	ScrapeZone(ctx context.Context, zoneID uuid.UUID, mode entity.ScrapeMode) (*ZoneResult, error)

	// RetryZone returns a failed zone to pending
	RetryZone(ctx context.Context, zoneID uuid.UUID) (*entity.Zone, error)

	// GetZone retrieves a zone by ID
	GetZone(ctx context.Context, zoneID uuid.UUID) (*entity.Zone, error)

	// ReleaseStaleZones returns zones stuck in progress past the staleness threshold to pending
	ReleaseStaleZones(ctx context.Context) (int, error)
}
