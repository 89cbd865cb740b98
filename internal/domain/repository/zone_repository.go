package repository

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrZoneNotFound is returned when a zone is not found.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneRepository defines the interface for zone persistence. Every state change
// is a conditional update on the current status and returns ErrStatusConflict
// when no row matched.
type ZoneRepository interface {
	// CreateBatch persists the zones of a strategy.
	CreateBatch(ctx context.Context, zones []*entity.Zone) error

	// FindByID retrieves a zone by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error)

	// ListByStrategy returns all zones of a strategy ordered by priority.
	ListByStrategy(ctx context.Context, strategyID uuid.UUID) ([]*entity.Zone, error)

	// ListByStrategyAndStatus returns zones of a strategy in the given status ordered by priority.
	ListByStrategyAndStatus(ctx context.Context, strategyID uuid.UUID, status entity.ZoneStatus) ([]*entity.Zone, error)

	// ClaimForScrape moves a pending zone to in_progress, stamping the start time and bumping attempts.
	// The returned attempt number is the claim token for MarkCompleted and MarkFailed.
	ClaimForScrape(ctx context.Context, id uuid.UUID, startedAt time.Time) (int, error)

	// MarkCompleted moves a zone still in_progress under the given attempt to completed,
	// overwriting its summary.
	MarkCompleted(ctx context.Context, id uuid.UUID, attempt int, summary *entity.ZoneSummary, scrapedAt time.Time) error

	// MarkFailed moves a zone still in_progress under the given attempt to failed with a reason.
	MarkFailed(ctx context.Context, id uuid.UUID, attempt int, reason string) error

	// ResetFailed moves a failed zone back to pending.
	ResetFailed(ctx context.Context, id uuid.UUID) error

	// ReleaseStale moves every in_progress zone started before the cutoff back to pending
	// and returns the released zones.
	ReleaseStale(ctx context.Context, startedBefore time.Time) ([]*entity.Zone, error)
}
