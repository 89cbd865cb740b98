package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
)

// ZoneReport is the coverage report of one zone.
type ZoneReport struct {
	ZoneID              uuid.UUID           `json:"zone_id"`
	Status              entity.ZoneStatus   `json:"status"`
	Summary             *entity.ZoneSummary `json:"summary,omitempty"`
	QualificationRate   float64             `json:"qualification_rate"`
	WebsiteCoverageRate float64             `json:"website_coverage_rate"`
}

// StrategyReport is the rollup of all zone reports of a strategy.
type StrategyReport struct {
	StrategyID          uuid.UUID                 `json:"strategy_id"`
	Zones               int                       `json:"zones"`
	SummarizedZones     int                       `json:"summarized_zones"`
	ZonesByStatus       map[entity.ZoneStatus]int `json:"zones_by_status"`
	Total               int                       `json:"total"`
	Qualified           int                       `json:"qualified"`
	WebsiteValid        int                       `json:"website_valid"`
	WebsiteInvalid      int                       `json:"website_invalid"`
	WebsiteNeedsReview  int                       `json:"website_needs_review"`
	WebsiteUnknown      int                       `json:"website_unknown"`
	NewBusinesses       int                       `json:"new_businesses"`
	QualificationRate   float64                   `json:"qualification_rate"`
	WebsiteCoverageRate float64                   `json:"website_coverage_rate"`
}

// ReportUsecase defines the interface for coverage reporting
type ReportUsecase interface {
	// ZoneReport returns the coverage report of a zone
	ZoneReport(ctx context.Context, zoneID uuid.UUID) (*ZoneReport, error)

	// StrategyReport returns the coverage rollup of a strategy
	StrategyReport(ctx context.Context, strategyID uuid.UUID) (*StrategyReport, error)
}
