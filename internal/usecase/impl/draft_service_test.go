package impl

import (
	"context"
	"encoding/json"
	"testing"

	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	mockRepo "leadgrid/internal/mocks/repository"
	mockSvc "leadgrid/internal/mocks/service"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type draftServiceFixtures struct {
	service   usecase.DraftUsecase
	draftRepo *mockRepo.MockDraftCampaignRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestDraftService(t *testing.T) draftServiceFixtures {
	fx := draftServiceFixtures{
		draftRepo: mockRepo.NewMockDraftCampaignRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewDraftService(DraftServiceParams{
		DraftRepo: fx.draftRepo,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func newTestDraft() *entity.DraftCampaign {
	return &entity.DraftCampaign{
		ID:          uuid.New(),
		StrategyID:  uuid.New(),
		ZoneID:      uuid.New(),
		Status:      entity.DraftStatusPendingReview,
		BusinessIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func TestDraftService_PromoteDraft(t *testing.T) {
	fx := createTestDraftService(t)

	ctx := context.Background()
	draft := newTestDraft()
	reviewerID := uuid.New()

	fx.draftRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)
	fx.draftRepo.EXPECT().Review(ctx, draft.ID, entity.DraftStatusPromoted, reviewerID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.Event) bool {
			var payload service.OutreachPayload
			if e.Type != service.EventOutreachRequested || json.Unmarshal(e.Payload, &payload) != nil {
				return false
			}

			return payload.DraftID == draft.ID.String() && len(payload.BusinessIDs) == 2
		})).
		Return(nil)

	promoted, err := fx.service.PromoteDraft(ctx, draft.ID, reviewerID)
	require.NoError(t, err)

	assert.Equal(t, entity.DraftStatusPromoted, promoted.Status)
	require.NotNil(t, promoted.ReviewedBy)
	assert.Equal(t, reviewerID, *promoted.ReviewedBy)
	assert.NotNil(t, promoted.ReviewedAt)
}

func TestDraftService_PromoteDraft_PublishFailure(t *testing.T) {
	fx := createTestDraftService(t)

	ctx := context.Background()
	draft := newTestDraft()

	fx.draftRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)
	fx.draftRepo.EXPECT().Review(ctx, draft.ID, entity.DraftStatusPromoted, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.PromoteDraft(ctx, draft.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
}

func TestDraftService_DiscardDraft(t *testing.T) {
	fx := createTestDraftService(t)

	ctx := context.Background()
	draft := newTestDraft()

	fx.draftRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)
	fx.draftRepo.EXPECT().Review(ctx, draft.ID, entity.DraftStatusDiscarded, mock.Anything, mock.Anything).Return(nil)

	discarded, err := fx.service.DiscardDraft(ctx, draft.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.DraftStatusDiscarded, discarded.Status)
}

func TestDraftService_ReviewConflicts(t *testing.T) {
	t.Run("already reviewed", func(t *testing.T) {
		fx := createTestDraftService(t)

		ctx := context.Background()
		draft := newTestDraft()
		draft.Status = entity.DraftStatusDiscarded

		fx.draftRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)

		_, err := fx.service.PromoteDraft(ctx, draft.ID, uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrDraftAlreadyReviewed))
	})

	t.Run("lost review race", func(t *testing.T) {
		fx := createTestDraftService(t)

		ctx := context.Background()
		draft := newTestDraft()

		fx.draftRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)
		fx.draftRepo.EXPECT().Review(ctx, draft.ID, mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrStatusConflict)

		_, err := fx.service.DiscardDraft(ctx, draft.ID, uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrDraftAlreadyReviewed))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDraftService(t)

		ctx := context.Background()
		id := uuid.New()

		fx.draftRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDraftNotFound)

		_, err := fx.service.PromoteDraft(ctx, id, uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrDraftNotFound))
	})
}
