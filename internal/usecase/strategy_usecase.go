// Package usecase defines the application use cases exposed to the delivery layer.
package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
)

// StrategyDetail is a strategy together with its zones ordered by priority.
type StrategyDetail struct {
	Strategy *entity.Strategy `json:"strategy"`
	Zones    []*entity.Zone   `json:"zones"`
}

// DispatchFailure records a zone whose scrape message could not be published.
type DispatchFailure struct {
	ZoneID uuid.UUID `json:"zone_id"`
	Reason string    `json:"reason"`
}

// DispatchResult summarizes a strategy-wide scrape dispatch.
type DispatchResult struct {
	StrategyID uuid.UUID         `json:"strategy_id"`
	Mode       entity.ScrapeMode `json:"mode"`
	Dispatched []uuid.UUID       `json:"dispatched"`
	Failed     []DispatchFailure `json:"failed"`
}

// StrategyUsecase defines the interface for strategy lifecycle use cases
type StrategyUsecase interface {
	// CreateStrategy asks the generator for a proposal and persists the strategy with its zones atomically
	CreateStrategy(ctx context.Context, market entity.MarketDescriptor) (*StrategyDetail, error)

	// GetStrategy retrieves a strategy and its zones
	GetStrategy(ctx context.Context, id uuid.UUID) (*StrategyDetail, error)

	// ListStrategies returns strategies, newest first
	ListStrategies(ctx context.Context, limit, offset int) ([]*entity.Strategy, error)

	// ChangeStatus moves a strategy along its lifecycle
	ChangeStatus(ctx context.Context, id uuid.UUID, status entity.StrategyStatus) (*entity.Strategy, error)

	// DispatchScrapes publishes one scrape message per pending zone of the strategy
	DispatchScrapes(ctx context.Context, id uuid.UUID, mode entity.ScrapeMode) (*DispatchResult, error)
}
