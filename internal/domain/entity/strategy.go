// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// StrategyStatus is the lifecycle state of a coverage strategy.
type StrategyStatus string

const (
	StrategyStatusDraft    StrategyStatus = "draft"
	StrategyStatusActive   StrategyStatus = "active"
	StrategyStatusArchived StrategyStatus = "archived"
)

// IsValid checks if the StrategyStatus is a known value.
func (s StrategyStatus) IsValid() bool {
	switch s {
	case StrategyStatusDraft, StrategyStatusActive, StrategyStatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the strategy may move from s to next.
func (s StrategyStatus) CanTransitionTo(next StrategyStatus) bool {
	switch s {
	case StrategyStatusDraft:
		return next == StrategyStatusActive || next == StrategyStatusArchived
	case StrategyStatusActive:
		return next == StrategyStatusArchived
	default:
		return false
	}
}

// MarketDescriptor describes the market a strategy should cover.
type MarketDescriptor struct {
	Region   string    `json:"region"`
	Category string    `json:"category"`
	Bounds   orb.Bound `json:"bounds"`
}

// Strategy is a generated plan that partitions a market into zones.
type Strategy struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Region    string         `json:"region"`
	Category  string         `json:"category"`
	Bounds    orb.Bound      `json:"bounds"`
	Rationale string         `json:"rationale"` // Free-form explanation returned by the generator.
	Status    StrategyStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CanDispatch reports whether zones of this strategy may be scraped.
func (s *Strategy) CanDispatch() bool {
	return s.Status != StrategyStatusArchived
}
