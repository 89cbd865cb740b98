package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	mockRepo "leadgrid/internal/mocks/repository"
	mockSvc "leadgrid/internal/mocks/service"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// zoneServiceFixtures holds all test dependencies for zone service tests.
type zoneServiceFixtures struct {
	service      usecase.ZoneUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	zoneRepo     *mockRepo.MockZoneRepository
	businessRepo *mockRepo.MockBusinessRepository
	draftRepo    *mockRepo.MockDraftCampaignRepository
	provider     *mockSvc.MockScrapeProvider
	publisher    *mockSvc.MockEventPublisher
	archive      *mockSvc.MockRawArchive
	cache        *mockSvc.MockReportCache
}

func createTestZoneService(t *testing.T) zoneServiceFixtures {
	fx := zoneServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		zoneRepo:     mockRepo.NewMockZoneRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		draftRepo:    mockRepo.NewMockDraftCampaignRepository(t),
		provider:     mockSvc.NewMockScrapeProvider(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		archive:      mockSvc.NewMockRawArchive(t),
		cache:        mockSvc.NewMockReportCache(t),
	}

	fx.service = NewZoneService(ZoneServiceParams{
		TxManager: fx.txManager,
		ZoneRepo:  fx.zoneRepo,
		Provider:  fx.provider,
		Publisher: fx.publisher,
		Archive:   fx.archive,
		Cache:     fx.cache,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

func newTestZone(status entity.ZoneStatus) *entity.Zone {
	return &entity.Zone{
		ID:         uuid.New(),
		StrategyID: uuid.New(),
		Name:       "Downtown",
		Category:   "plumbing",
		Bounds:     orb.Bound{Min: orb.Point{-122.42, 37.77}, Max: orb.Point{-122.40, 37.79}},
		Status:     status,
		Attempts:   1,
	}
}

// testClaimAttempt is the attempt number ClaimForScrape hands back in the mocked scrapes.
const testClaimAttempt = 2

// qualifiedRecord scores 100 against the test rubric.
func qualifiedRecord(externalID string) service.RawBusiness {
	return service.RawBusiness{
		ExternalID: externalID, Name: "Ace Plumbing " + externalID, Category: "Plumbing",
		Phone: "+1 555 0100", Email: "hello@ace.example", Website: "https://ace.example",
		Rating: 4.8, ReviewCount: 200,
	}
}

// unqualifiedRecord scores 0 against the test rubric.
func unqualifiedRecord(externalID string) service.RawBusiness {
	return service.RawBusiness{ExternalID: externalID, Name: "Quiet Shop " + externalID, Category: "bakery"}
}

func (fx zoneServiceFixtures) expectClaim(zone *entity.Zone) {
	fx.zoneRepo.EXPECT().ClaimForScrape(mock.Anything, zone.ID, mock.AnythingOfType("time.Time")).Return(testClaimAttempt, nil)
	claimed := *zone
	claimed.Status = entity.ZoneStatusInProgress
	claimed.Attempts = testClaimAttempt
	fx.zoneRepo.EXPECT().FindByID(mock.Anything, zone.ID).Return(&claimed, nil).Once()
}

func (fx zoneServiceFixtures) expectInvalidate(zone *entity.Zone) {
	fx.cache.EXPECT().Incr(mock.Anything, generationKey(zoneReportKey(zone.ID))).Return(int64(1), nil)
	fx.cache.EXPECT().Incr(mock.Anything, generationKey(strategyReportKey(zone.StrategyID))).Return(int64(1), nil)
}

func (fx zoneServiceFixtures) expectPersist(existing map[string]*entity.Business) {
	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewBusinessRepository().Return(fx.businessRepo)
	fx.factory.EXPECT().NewZoneRepository().Return(fx.zoneRepo)
	fx.businessRepo.EXPECT().FindByExternalIDs(mock.Anything, mock.Anything).Return(existing, nil)
	fx.businessRepo.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)
}

func TestZoneService_ScrapeZone_DraftMode(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	raw := []byte(`{"results":[]}`)

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q service.ScrapeQuery) bool {
		return q.Category == "plumbing" && q.Limit == 50 && q.RadiusMeters > 0
	})).Return(&service.ScrapeResult{
		Businesses: []service.RawBusiness{
			qualifiedRecord("ext-1"),
			unqualifiedRecord("ext-2"),
			qualifiedRecord("ext-1"),
			{Name: "no id"},
		},
		Raw: raw,
	}, nil).Once()
	fx.archive.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "zones/"+zone.ID.String()+"/") && strings.HasSuffix(key, ".json")
		}), raw).
		Return(nil)

	fx.expectPersist(map[string]*entity.Business{})
	fx.factory.EXPECT().NewDraftCampaignRepository().Return(fx.draftRepo)
	fx.draftRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(d *entity.DraftCampaign) bool {
			return d.ZoneID == zone.ID && d.StrategyID == zone.StrategyID &&
				d.Status == entity.DraftStatusPendingReview && len(d.BusinessIDs) == 1
		})).
		Return(nil)
	fx.zoneRepo.EXPECT().
		MarkCompleted(mock.Anything, zone.ID, testClaimAttempt, mock.MatchedBy(func(s *entity.ZoneSummary) bool {
			return s.Total == 2 && s.Qualified == 1 && s.NewBusinesses == 2 && s.NewlyQualified == 1 &&
				s.WebsiteValid == 1 && s.WebsiteInvalid == 1
		}), mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, entity.ZoneStatusCompleted, result.Zone.Status)
	assert.Equal(t, 2, result.Summary.Total)
	assert.Len(t, result.NewlyQualified, 1)
	assert.NotNil(t, result.DraftID)
	assert.False(t, result.OutreachPublished)
	require.NotNil(t, result.Zone.Summary)
	assert.Equal(t, result.Summary, *result.Zone.Summary)
}

func TestZoneService_ScrapeZone_PreviouslyQualifiedNotDrafted(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).
		Return(&service.ScrapeResult{Businesses: []service.RawBusiness{qualifiedRecord("ext-1")}}, nil)

	fx.expectPersist(map[string]*entity.Business{
		"ext-1": {ID: uuid.New(), ExternalID: "ext-1", Qualified: true},
	})
	fx.zoneRepo.EXPECT().
		MarkCompleted(mock.Anything, zone.ID, testClaimAttempt, mock.MatchedBy(func(s *entity.ZoneSummary) bool {
			return s.Total == 1 && s.Qualified == 1 && s.NewBusinesses == 0 && s.NewlyQualified == 0
		}), mock.Anything).
		Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
	require.NoError(t, err)

	assert.Empty(t, result.NewlyQualified)
	assert.Nil(t, result.DraftID)
}

func TestZoneService_ScrapeZone_LiveModePublishesOutreach(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).
		Return(&service.ScrapeResult{Businesses: []service.RawBusiness{
			qualifiedRecord("ext-1"),
			qualifiedRecord("ext-2"),
			unqualifiedRecord("ext-3"),
		}}, nil)

	fx.expectPersist(map[string]*entity.Business{
		"ext-2": {ExternalID: "ext-2", Qualified: false},
	})
	fx.zoneRepo.EXPECT().MarkCompleted(mock.Anything, zone.ID, testClaimAttempt, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
			var payload service.OutreachPayload
			if e.Type != service.EventOutreachRequested || json.Unmarshal(e.Payload, &payload) != nil {
				return false
			}

			return payload.ZoneID == zone.ID.String() && len(payload.BusinessIDs) == 2 && payload.DraftID == ""
		})).
		Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeLive)
	require.NoError(t, err)

	assert.True(t, result.OutreachPublished)
	assert.Empty(t, result.OutreachError)
	assert.Nil(t, result.DraftID)
	assert.Equal(t, 2, result.Summary.NewBusinesses)
	assert.Len(t, result.NewlyQualified, 2)
}

func TestZoneService_ScrapeZone_LiveModeOutreachFailureKeepsCompletion(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).
		Return(&service.ScrapeResult{Businesses: []service.RawBusiness{qualifiedRecord("ext-1")}}, nil)
	fx.expectPersist(map[string]*entity.Business{})
	fx.zoneRepo.EXPECT().MarkCompleted(mock.Anything, zone.ID, testClaimAttempt, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeLive)
	require.NoError(t, err)

	assert.Equal(t, entity.ZoneStatusCompleted, result.Zone.Status)
	assert.False(t, result.OutreachPublished)
	assert.Contains(t, result.OutreachError, "broker down")
}

func TestZoneService_ScrapeZone_RetriesTransientProviderErrors(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	transient := service.NewTransientProviderError(503, errors.New("unavailable"))

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, transient).Twice()
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).
		Return(&service.ScrapeResult{Businesses: []service.RawBusiness{unqualifiedRecord("ext-1")}}, nil).Once()
	fx.expectPersist(map[string]*entity.Business{})
	fx.zoneRepo.EXPECT().MarkCompleted(mock.Anything, zone.ID, testClaimAttempt, mock.Anything, mock.Anything).Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Total)
	fx.provider.AssertNumberOfCalls(t, "Search", 3)
}

func TestZoneService_ScrapeZone_TransientExhaustionFailsZone(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	transient := service.NewTransientProviderError(429, errors.New("rate limited"))

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, transient).Times(3)
	fx.zoneRepo.EXPECT().MarkFailed(mock.Anything, zone.ID, testClaimAttempt, mock.AnythingOfType("string")).Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrZoneFailed))
	fx.provider.AssertNumberOfCalls(t, "Search", 3)
}

func TestZoneService_ScrapeZone_PermanentErrorNotRetried(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	permanent := service.NewPermanentProviderError(400, errors.New("bad query"))

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, permanent).Once()
	fx.zoneRepo.EXPECT().
		MarkFailed(mock.Anything, zone.ID, testClaimAttempt, mock.MatchedBy(func(reason string) bool {
			return strings.Contains(reason, "bad query")
		})).
		Return(nil)
	fx.expectInvalidate(zone)

	_, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeLive)

	assert.True(t, errors.Is(err, domainerrors.ErrZoneFailed))
	fx.provider.AssertNumberOfCalls(t, "Search", 1)
}

func TestZoneService_ScrapeZone_PersistFailureFailsZone(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).
		Return(&service.ScrapeResult{Businesses: []service.RawBusiness{qualifiedRecord("ext-1")}}, nil)
	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewBusinessRepository().Return(fx.businessRepo)
	fx.businessRepo.EXPECT().FindByExternalIDs(mock.Anything, []string{"ext-1"}).Return(map[string]*entity.Business{}, nil)
	fx.businessRepo.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(repository.ErrTransientStorage)
	fx.zoneRepo.EXPECT().MarkFailed(mock.Anything, zone.ID, testClaimAttempt, mock.Anything).Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrZoneFailed))
}

func TestZoneService_ScrapeZone_ArchiveFailureIsIgnored(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)

	fx.expectClaim(zone)
	fx.provider.EXPECT().Search(mock.Anything, mock.Anything).
		Return(&service.ScrapeResult{Raw: []byte(`[]`)}, nil)
	fx.archive.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))
	fx.expectPersist(map[string]*entity.Business{})
	fx.zoneRepo.EXPECT().
		MarkCompleted(mock.Anything, zone.ID, testClaimAttempt, mock.MatchedBy(func(s *entity.ZoneSummary) bool { return s.Total == 0 }), mock.Anything).
		Return(nil)
	fx.expectInvalidate(zone)

	result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.Total)
}

func TestZoneService_ScrapeZone_ClaimConflicts(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.ZoneStatus
		findErr error
		wantErr error
	}{
		{name: "in progress", status: entity.ZoneStatusInProgress, wantErr: domainerrors.ErrZoneBusy},
		{name: "released back to pending", status: entity.ZoneStatusPending, wantErr: domainerrors.ErrZoneBusy},
		{name: "completed", status: entity.ZoneStatusCompleted, wantErr: domainerrors.ErrZoneNotScrapeable},
		{name: "failed", status: entity.ZoneStatusFailed, wantErr: domainerrors.ErrZoneNotScrapeable},
		{name: "missing", findErr: repository.ErrZoneNotFound, wantErr: domainerrors.ErrZoneNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestZoneService(t)

			ctx := context.Background()
			zone := newTestZone(tt.status)

			fx.zoneRepo.EXPECT().ClaimForScrape(mock.Anything, zone.ID, mock.Anything).Return(0, repository.ErrStatusConflict)
			if tt.findErr != nil {
				fx.zoneRepo.EXPECT().FindByID(mock.Anything, zone.ID).Return(nil, tt.findErr)
			} else {
				fx.zoneRepo.EXPECT().FindByID(mock.Anything, zone.ID).Return(zone, nil)
			}

			result, err := fx.service.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)

			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestZoneService_ScrapeZone_InvalidMode(t *testing.T) {
	fx := createTestZoneService(t)

	_, err := fx.service.ScrapeZone(context.Background(), uuid.New(), entity.ScrapeMode("bulk"))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "mode", validationErr.Field)
}

func TestZoneService_RetryZone(t *testing.T) {
	t.Run("failed zone returns to pending", func(t *testing.T) {
		fx := createTestZoneService(t)

		ctx := context.Background()
		zone := newTestZone(entity.ZoneStatusPending)

		fx.zoneRepo.EXPECT().ResetFailed(ctx, zone.ID).Return(nil)
		fx.zoneRepo.EXPECT().FindByID(ctx, zone.ID).Return(zone, nil)
		fx.expectInvalidate(zone)

		got, err := fx.service.RetryZone(ctx, zone.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ZoneStatusPending, got.Status)
	})

	t.Run("zone not failed", func(t *testing.T) {
		fx := createTestZoneService(t)

		ctx := context.Background()
		zone := newTestZone(entity.ZoneStatusCompleted)

		fx.zoneRepo.EXPECT().ResetFailed(ctx, zone.ID).Return(repository.ErrStatusConflict)
		fx.zoneRepo.EXPECT().FindByID(ctx, zone.ID).Return(zone, nil)

		_, err := fx.service.RetryZone(ctx, zone.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrZoneNotRetryable))
	})

	t.Run("zone missing", func(t *testing.T) {
		fx := createTestZoneService(t)

		ctx := context.Background()
		zoneID := uuid.New()

		fx.zoneRepo.EXPECT().ResetFailed(ctx, zoneID).Return(repository.ErrStatusConflict)
		fx.zoneRepo.EXPECT().FindByID(ctx, zoneID).Return(nil, repository.ErrZoneNotFound)

		_, err := fx.service.RetryZone(ctx, zoneID)
		assert.True(t, errors.Is(err, domainerrors.ErrZoneNotFound))
	})
}

func TestZoneService_GetZone_NotFound(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	zoneID := uuid.New()

	fx.zoneRepo.EXPECT().FindByID(ctx, zoneID).Return(nil, repository.ErrZoneNotFound)

	zone, err := fx.service.GetZone(ctx, zoneID)
	assert.Nil(t, zone)
	assert.True(t, errors.Is(err, domainerrors.ErrZoneNotFound))
}

func TestZoneService_ReleaseStaleZones(t *testing.T) {
	fx := createTestZoneService(t)

	ctx := context.Background()
	stale := []*entity.Zone{newTestZone(entity.ZoneStatusPending), newTestZone(entity.ZoneStatusPending)}

	before := time.Now().UTC().Add(-30 * time.Minute)
	fx.zoneRepo.EXPECT().
		ReleaseStale(ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.Before(before) && cutoff.Before(time.Now().UTC().Add(-29*time.Minute))
		})).
		Return(stale, nil)
	for _, zone := range stale {
		fx.expectInvalidate(zone)
	}

	released, err := fx.service.ReleaseStaleZones(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, released)
}

func TestDedupeByExternalID(t *testing.T) {
	records := []service.RawBusiness{
		{ExternalID: "a", Name: "first"},
		{ExternalID: ""},
		{ExternalID: "b"},
		{ExternalID: "a", Name: "second"},
	}

	unique := dedupeByExternalID(records)

	require.Len(t, unique, 2)
	assert.Equal(t, "first", unique[0].Name)
	assert.Equal(t, "b", unique[1].ExternalID)
}
