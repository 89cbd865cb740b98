package repository

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDraftNotFound is returned when a draft campaign is not found.
var ErrDraftNotFound = errors.New("draft campaign not found")

// DraftCampaignRepository defines the interface for draft campaign persistence.
type DraftCampaignRepository interface {
	// Create persists a new draft campaign.
	Create(ctx context.Context, draft *entity.DraftCampaign) error

	// FindByID retrieves a draft campaign by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DraftCampaign, error)

	// ListByStrategy returns the drafts of a strategy, newest first.
	ListByStrategy(ctx context.Context, strategyID uuid.UUID) ([]*entity.DraftCampaign, error)

	// Review moves a pending_review draft to the given status.
	// Returns ErrStatusConflict if the draft was already reviewed.
	Review(ctx context.Context, id uuid.UUID, status entity.DraftStatus, reviewerID uuid.UUID, reviewedAt time.Time) error
}
