package service

import (
	"context"

	"leadgrid/internal/domain/entity"
)

// ZoneProposal is one zone of a generated strategy.
type ZoneProposal struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Category string  `json:"category" validate:"required,max=255"`
	MinLat   float64 `json:"min_lat" validate:"gte=-90,lte=90"`
	MinLng   float64 `json:"min_lng" validate:"gte=-180,lte=180"`
	MaxLat   float64 `json:"max_lat" validate:"gte=-90,lte=90,gtfield=MinLat"`
	MaxLng   float64 `json:"max_lng" validate:"gte=-180,lte=180,gtfield=MinLng"`
	Priority int     `json:"priority" validate:"gte=0"`
}

// StrategyProposal is the structured output of a StrategyGenerator.
type StrategyProposal struct {
	Name      string         `json:"name" validate:"required,max=255"`
	Rationale string         `json:"rationale" validate:"max=10000"`
	Zones     []ZoneProposal `json:"zones" validate:"required,min=1,dive"`
}

// StrategyGenerator defines the boundary to the strategy collaborator.
// Implementations may return malformed proposals; callers validate them.
type StrategyGenerator interface {
	Generate(ctx context.Context, market entity.MarketDescriptor) (*StrategyProposal, error)
}
