package impl

import (
	"context"
	"encoding/json"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service      usecase.ReportUsecase
	strategyRepo *mockRepo.MockStrategyRepository
	zoneRepo     *mockRepo.MockZoneRepository
	cache        *mockSvc.MockReportCache
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	fx := reportServiceFixtures{
		strategyRepo: mockRepo.NewMockStrategyRepository(t),
		zoneRepo:     mockRepo.NewMockZoneRepository(t),
		cache:        mockSvc.NewMockReportCache(t),
	}

	fx.service = NewCoverageReportService(CoverageReportServiceParams{
		StrategyRepo: fx.strategyRepo,
		ZoneRepo:     fx.zoneRepo,
		Cache:        fx.cache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func zoneWithSummary(strategyID uuid.UUID, status entity.ZoneStatus, summary *entity.ZoneSummary) *entity.Zone {
	return &entity.Zone{ID: uuid.New(), StrategyID: strategyID, Status: status, Summary: summary}
}

func TestBuildZoneReport_Rates(t *testing.T) {
	zone := zoneWithSummary(uuid.New(), entity.ZoneStatusCompleted, &entity.ZoneSummary{
		Total: 10, Qualified: 6, WebsiteValid: 4, WebsiteInvalid: 5, WebsiteNeedsReview: 1,
	})

	report := BuildZoneReport(zone)

	assert.Equal(t, zone.ID, report.ZoneID)
	assert.InDelta(t, 0.6, report.QualificationRate, 1e-9)
	assert.InDelta(t, 0.4, report.WebsiteCoverageRate, 1e-9)
}

func TestBuildZoneReport_ZeroTotal(t *testing.T) {
	empty := BuildZoneReport(zoneWithSummary(uuid.New(), entity.ZoneStatusCompleted, &entity.ZoneSummary{}))
	assert.Zero(t, empty.QualificationRate)
	assert.Zero(t, empty.WebsiteCoverageRate)

	pending := BuildZoneReport(zoneWithSummary(uuid.New(), entity.ZoneStatusPending, nil))
	assert.Nil(t, pending.Summary)
	assert.Zero(t, pending.QualificationRate)
}

func TestBuildStrategyReport_WeightedRollup(t *testing.T) {
	strategyID := uuid.New()
	zones := []*entity.Zone{
		zoneWithSummary(strategyID, entity.ZoneStatusCompleted, &entity.ZoneSummary{
			Total: 10, Qualified: 6, WebsiteValid: 4, WebsiteInvalid: 6, NewBusinesses: 10,
		}),
		zoneWithSummary(strategyID, entity.ZoneStatusCompleted, &entity.ZoneSummary{
			Total: 30, Qualified: 6, WebsiteValid: 24, WebsiteNeedsReview: 3, WebsiteUnknown: 3, NewBusinesses: 5,
		}),
		zoneWithSummary(strategyID, entity.ZoneStatusPending, nil),
	}

	report := BuildStrategyReport(strategyID, zones)

	assert.Equal(t, 3, report.Zones)
	assert.Equal(t, 2, report.SummarizedZones)
	assert.Equal(t, 40, report.Total)
	assert.Equal(t, 12, report.Qualified)
	assert.Equal(t, 28, report.WebsiteValid)
	assert.Equal(t, 6, report.WebsiteInvalid)
	assert.Equal(t, 3, report.WebsiteNeedsReview)
	assert.Equal(t, 3, report.WebsiteUnknown)
	assert.Equal(t, 15, report.NewBusinesses)
	assert.InDelta(t, 0.3, report.QualificationRate, 1e-9)
	assert.InDelta(t, 0.7, report.WebsiteCoverageRate, 1e-9)
	assert.Equal(t, 2, report.ZonesByStatus[entity.ZoneStatusCompleted])
	assert.Equal(t, 1, report.ZonesByStatus[entity.ZoneStatusPending])
	assert.Equal(t, 0, report.ZonesByStatus[entity.ZoneStatusFailed])
}

func TestBuildStrategyReport_NoZones(t *testing.T) {
	report := BuildStrategyReport(uuid.New(), nil)

	assert.Zero(t, report.Total)
	assert.Zero(t, report.QualificationRate)
	assert.Len(t, report.ZonesByStatus, 4)
}

func TestCoverageReportService_ZoneReport_CacheMissPopulates(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	zone := zoneWithSummary(uuid.New(), entity.ZoneStatusCompleted, &entity.ZoneSummary{Total: 4, Qualified: 1, WebsiteValid: 2})
	base := zoneReportKey(zone.ID)
	key := base + ":g3"

	fx.cache.EXPECT().Get(ctx, generationKey(base)).Return([]byte("3"), nil)
	fx.cache.EXPECT().Get(ctx, key).Return(nil, service.ErrCacheMiss)
	fx.zoneRepo.EXPECT().FindByID(ctx, zone.ID).Return(zone, nil)
	fx.cache.EXPECT().Set(ctx, key, mock.AnythingOfType("[]uint8"), time.Minute).Return(nil)

	report, err := fx.service.ZoneReport(ctx, zone.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, report.QualificationRate, 1e-9)
	assert.InDelta(t, 0.5, report.WebsiteCoverageRate, 1e-9)
}

func TestCoverageReportService_ZoneReport_CacheHit(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	zoneID := uuid.New()
	cached, err := json.Marshal(&usecase.ZoneReport{ZoneID: zoneID, Status: entity.ZoneStatusCompleted, QualificationRate: 0.5})
	require.NoError(t, err)

	fx.cache.EXPECT().Get(ctx, generationKey(zoneReportKey(zoneID))).Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, zoneReportKey(zoneID)+":g0").Return(cached, nil)

	report, err := fx.service.ZoneReport(ctx, zoneID)
	require.NoError(t, err)
	assert.Equal(t, zoneID, report.ZoneID)
	assert.InDelta(t, 0.5, report.QualificationRate, 1e-9)
}

func TestCoverageReportService_ZoneReport_CacheErrorsFallBack(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	zone := zoneWithSummary(uuid.New(), entity.ZoneStatusPending, nil)

	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, errors.New("redis down")).Once()
	fx.zoneRepo.EXPECT().FindByID(ctx, zone.ID).Return(zone, nil)

	report, err := fx.service.ZoneReport(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusPending, report.Status)
}

func TestCoverageReportService_ZoneReport_NotFound(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	zoneID := uuid.New()

	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, service.ErrCacheMiss)
	fx.zoneRepo.EXPECT().FindByID(ctx, zoneID).Return(nil, repository.ErrZoneNotFound)

	_, err := fx.service.ZoneReport(ctx, zoneID)
	assert.True(t, errors.Is(err, domainerrors.ErrZoneNotFound))
}

func TestCoverageReportService_StrategyReport(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	strategyID := uuid.New()
	zones := []*entity.Zone{
		zoneWithSummary(strategyID, entity.ZoneStatusCompleted, &entity.ZoneSummary{Total: 10, Qualified: 6, WebsiteValid: 4}),
		zoneWithSummary(strategyID, entity.ZoneStatusFailed, nil),
	}

	fx.cache.EXPECT().Get(ctx, generationKey(strategyReportKey(strategyID))).Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, strategyReportKey(strategyID)+":g0").Return(nil, service.ErrCacheMiss)
	fx.strategyRepo.EXPECT().FindByID(ctx, strategyID).Return(&entity.Strategy{ID: strategyID}, nil)
	fx.zoneRepo.EXPECT().ListByStrategy(ctx, strategyID).Return(zones, nil)
	fx.cache.EXPECT().Set(ctx, strategyReportKey(strategyID)+":g0", mock.Anything, time.Minute).Return(nil)

	report, err := fx.service.StrategyReport(ctx, strategyID)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Zones)
	assert.Equal(t, 1, report.ZonesByStatus[entity.ZoneStatusFailed])
	assert.InDelta(t, 0.6, report.QualificationRate, 1e-9)
}

func TestCoverageReportService_StrategyReport_NotFound(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	strategyID := uuid.New()

	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, service.ErrCacheMiss)
	fx.strategyRepo.EXPECT().FindByID(ctx, strategyID).Return(nil, repository.ErrStrategyNotFound)

	_, err := fx.service.StrategyReport(ctx, strategyID)
	assert.True(t, errors.Is(err, domainerrors.ErrStrategyNotFound))
}

func TestCoverageReportService_ZoneReport_UndecodableGenerationSkipsCache(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	zone := zoneWithSummary(uuid.New(), entity.ZoneStatusPending, nil)

	fx.cache.EXPECT().Get(ctx, generationKey(zoneReportKey(zone.ID))).Return([]byte("garbage"), nil)
	fx.zoneRepo.EXPECT().FindByID(ctx, zone.ID).Return(zone, nil)

	report, err := fx.service.ZoneReport(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, zone.ID, report.ZoneID)
}

func TestCoverageReportService_ZoneReport_InvalidationDuringReadIsNotServedStale(t *testing.T) {
	fx := createTestReportService(t)
	cache := newMemoryReportCache()
	srv := NewCoverageReportService(CoverageReportServiceParams{
		StrategyRepo: fx.strategyRepo,
		ZoneRepo:     fx.zoneRepo,
		Cache:        cache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	strategyID := uuid.New()
	before := zoneWithSummary(strategyID, entity.ZoneStatusInProgress, nil)
	after := *before
	after.Status = entity.ZoneStatusCompleted
	after.Summary = &entity.ZoneSummary{Total: 2, Qualified: 1}

	// The zone completes after the reader loaded the old row but before it writes the cache.
	fx.zoneRepo.EXPECT().FindByID(ctx, before.ID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.Zone, error) {
			invalidateReportCache(ctx, cache, newDiscardLogger(), &after)

			return before, nil
		}).Once()
	fx.zoneRepo.EXPECT().FindByID(ctx, before.ID).Return(&after, nil).Once()

	stale, err := srv.ZoneReport(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusInProgress, stale.Status)

	fresh, err := srv.ZoneReport(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusCompleted, fresh.Status)
	assert.InDelta(t, 0.5, fresh.QualificationRate, 1e-9)

	cached, err := srv.ZoneReport(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusCompleted, cached.Status)
}
