package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// draftService implements the DraftUsecase interface.
type draftService struct {
	draftRepo repository.DraftCampaignRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// DraftServiceParams holds dependencies for DraftService, injected by Fx.
type DraftServiceParams struct {
	fx.In

	DraftRepo repository.DraftCampaignRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDraftService is the constructor for draftService.
func NewDraftService(params DraftServiceParams) usecase.DraftUsecase {
	return &draftService{
		draftRepo: params.DraftRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (srv *draftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDrafts returns the drafts of a strategy.
func (srv *draftService) ListDrafts(ctx context.Context, strategyID uuid.UUID) ([]*entity.DraftCampaign, error) {
	drafts, err := srv.draftRepo.ListByStrategy(ctx, strategyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drafts")
	}

	return drafts, nil
}

// GetDraft retrieves a draft campaign by ID.
func (srv *draftService) GetDraft(ctx context.Context, id uuid.UUID) (*entity.DraftCampaign, error) {
	draft, err := srv.draftRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, domainerrors.ErrDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to find draft")
	}

	return draft, nil
}

// PromoteDraft approves a draft and hands its businesses to outreach.
// The review is recorded first so a draft is handed off at most once.
func (srv *draftService) PromoteDraft(ctx context.Context, id, reviewerID uuid.UUID) (*entity.DraftCampaign, error) {
	draft, err := srv.review(ctx, id, entity.DraftStatusPromoted, reviewerID)
	if err != nil {
		return nil, err
	}

	event, err := service.NewEvent(service.EventOutreachRequested, deliverycontext.GetRequestIDFromContext(ctx), service.OutreachPayload{
		StrategyID:  draft.StrategyID.String(),
		ZoneID:      draft.ZoneID.String(),
		DraftID:     draft.ID.String(),
		BusinessIDs: uuidStrings(draft.BusinessIDs),
	})
	if err != nil {
		return nil, err
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to hand promoted draft to outreach", slog.String("draftID", id.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrServiceUnavailable, err.Error())
	}

	return draft, nil
}

// DiscardDraft rejects a draft.
func (srv *draftService) DiscardDraft(ctx context.Context, id, reviewerID uuid.UUID) (*entity.DraftCampaign, error) {
	return srv.review(ctx, id, entity.DraftStatusDiscarded, reviewerID)
}

func (srv *draftService) review(ctx context.Context, id uuid.UUID, status entity.DraftStatus, reviewerID uuid.UUID) (*entity.DraftCampaign, error) {
	draft, err := srv.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Status != entity.DraftStatusPendingReview {
		return nil, domainerrors.ErrDraftAlreadyReviewed
	}

	reviewedAt := srv.now()
	if err := srv.draftRepo.Review(ctx, id, status, reviewerID, reviewedAt); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrDraftAlreadyReviewed
		}

		return nil, errors.Wrap(err, "failed to review draft")
	}

	draft.Status = status
	draft.ReviewedBy = &reviewerID
	draft.ReviewedAt = &reviewedAt

	srv.log(ctx).Info("Draft reviewed",
		slog.String("draftID", id.String()),
		slog.String("status", string(status)),
		slog.String("reviewerID", reviewerID.String()))

	return draft, nil
}
