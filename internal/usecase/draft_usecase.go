package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
)

// DraftUsecase defines the interface for draft campaign review
type DraftUsecase interface {
	// ListDrafts returns the drafts of a strategy
	ListDrafts(ctx context.Context, strategyID uuid.UUID) ([]*entity.DraftCampaign, error)

	// GetDraft retrieves a draft campaign by ID
	GetDraft(ctx context.Context, id uuid.UUID) (*entity.DraftCampaign, error)

	// PromoteDraft approves a draft and hands its businesses to outreach
	PromoteDraft(ctx context.Context, id, reviewerID uuid.UUID) (*entity.DraftCampaign, error)

	// DiscardDraft rejects a draft
	DiscardDraft(ctx context.Context, id, reviewerID uuid.UUID) (*entity.DraftCampaign, error)
}
