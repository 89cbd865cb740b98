package repository

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStrategyNotFound is returned when a strategy is not found.
var ErrStrategyNotFound = errors.New("strategy not found")

// StrategyRepository defines the interface for strategy persistence.
type StrategyRepository interface {
	// Create persists a new strategy.
	Create(ctx context.Context, strategy *entity.Strategy) error

	// FindByID retrieves a strategy by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Strategy, error)

	// List returns strategies ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Strategy, error)

	// UpdateStatus moves a strategy from one status to another.
	// Returns ErrStatusConflict if the strategy is no longer in status from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.StrategyStatus) error
}
