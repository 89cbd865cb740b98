package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"leadgrid/config"
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

// coverageReportService implements the ReportUsecase interface.
type coverageReportService struct {
	strategyRepo repository.StrategyRepository
	zoneRepo     repository.ZoneRepository
	cache        service.ReportCache
	ttl          time.Duration
	logger       *slog.Logger
}

// CoverageReportServiceParams holds dependencies for CoverageReportService, injected by Fx.
type CoverageReportServiceParams struct {
	fx.In

	StrategyRepo repository.StrategyRepository
	ZoneRepo     repository.ZoneRepository
	Cache        service.ReportCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCoverageReportService is the constructor for coverageReportService.
func NewCoverageReportService(params CoverageReportServiceParams) usecase.ReportUsecase {
	ttl := 5 * time.Minute
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.ReportTTL > 0 {
		ttl = params.Config.Cache.ReportTTL
	}

	return &coverageReportService{
		strategyRepo: params.StrategyRepo,
		zoneRepo:     params.ZoneRepo,
		cache:        params.Cache,
		ttl:          ttl,
		logger:       params.Logger,
	}
}

func (srv *coverageReportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ZoneReport returns the coverage report of a zone, served from the cache when present.
func (srv *coverageReportService) ZoneReport(ctx context.Context, zoneID uuid.UUID) (*usecase.ZoneReport, error) {
	key, cacheable := srv.cacheKey(ctx, zoneReportKey(zoneID))

	report := &usecase.ZoneReport{}
	if cacheable && srv.readCache(ctx, key, report) {
		return report, nil
	}

	zone, err := srv.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone")
	}

	report = BuildZoneReport(zone)
	if cacheable {
		srv.writeCache(ctx, key, report)
	}

	return report, nil
}

// StrategyReport returns the coverage rollup of a strategy, served from the cache when present.
func (srv *coverageReportService) StrategyReport(ctx context.Context, strategyID uuid.UUID) (*usecase.StrategyReport, error) {
	key, cacheable := srv.cacheKey(ctx, strategyReportKey(strategyID))

	report := &usecase.StrategyReport{}
	if cacheable && srv.readCache(ctx, key, report) {
		return report, nil
	}

	if _, err := srv.strategyRepo.FindByID(ctx, strategyID); err != nil {
		if errors.Is(err, repository.ErrStrategyNotFound) {
			return nil, domainerrors.ErrStrategyNotFound
		}

		return nil, errors.Wrap(err, "failed to find strategy")
	}

	zones, err := srv.zoneRepo.ListByStrategy(ctx, strategyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list strategy zones")
	}

	report = BuildStrategyReport(strategyID, zones)
	if cacheable {
		srv.writeCache(ctx, key, report)
	}

	return report, nil
}

// cacheKey resolves the versioned key of a report. The version is read before the
// repository so a report built from rows older than an invalidation lands under a
// version no reader will ask for again. Reports are not cached when the version
// cannot be read.
func (srv *coverageReportService) cacheKey(ctx context.Context, base string) (string, bool) {
	genKey := generationKey(base)

	var gen int64
	data, err := srv.cache.Get(ctx, genKey)
	switch {
	case errors.Is(err, service.ErrCacheMiss):
	case err != nil:
		srv.log(ctx).Warn("Report cache read failed", slog.String("key", genKey), slog.Any("error", err))

		return "", false
	default:
		gen, err = strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			srv.log(ctx).Warn("Discarding undecodable report generation", slog.String("key", genKey), slog.Any("error", err))

			return "", false
		}
	}

	return fmt.Sprintf("%s:g%d", base, gen), true
}

// readCache decodes a cached report into out. Any cache failure is treated as a miss.
func (srv *coverageReportService) readCache(ctx context.Context, key string, out any) bool {
	data, err := srv.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Report cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		srv.log(ctx).Warn("Discarding undecodable cached report", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (srv *coverageReportService) writeCache(ctx context.Context, key string, report any) {
	data, err := json.Marshal(report)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode report for cache", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := srv.cache.Set(ctx, key, data, srv.ttl); err != nil {
		srv.log(ctx).Warn("Report cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// BuildZoneReport derives the rates of a single zone. Rates are 0 when the zone has no businesses.
func BuildZoneReport(zone *entity.Zone) *usecase.ZoneReport {
	report := &usecase.ZoneReport{
		ZoneID:  zone.ID,
		Status:  zone.Status,
		Summary: zone.Summary,
	}

	if zone.Summary != nil && zone.Summary.Total > 0 {
		total := float64(zone.Summary.Total)
		report.QualificationRate = float64(zone.Summary.Qualified) / total
		report.WebsiteCoverageRate = float64(zone.Summary.WebsiteValid) / total
	}

	return report
}

// BuildStrategyReport sums zone counts and weights zone rates by zone total.
// Zones without a summary only count towards the status breakdown.
func BuildStrategyReport(strategyID uuid.UUID, zones []*entity.Zone) *usecase.StrategyReport {
	report := &usecase.StrategyReport{
		StrategyID: strategyID,
		Zones:      len(zones),
		ZonesByStatus: map[entity.ZoneStatus]int{
			entity.ZoneStatusPending:    0,
			entity.ZoneStatusInProgress: 0,
			entity.ZoneStatusCompleted:  0,
			entity.ZoneStatusFailed:     0,
		},
	}

	var weightedQualification, weightedCoverage float64

	for _, zone := range zones {
		report.ZonesByStatus[zone.Status]++

		if zone.Summary == nil {
			continue
		}

		summary := zone.Summary
		report.SummarizedZones++
		report.Total += summary.Total
		report.Qualified += summary.Qualified
		report.WebsiteValid += summary.WebsiteValid
		report.WebsiteInvalid += summary.WebsiteInvalid
		report.WebsiteNeedsReview += summary.WebsiteNeedsReview
		report.WebsiteUnknown += summary.WebsiteUnknown
		report.NewBusinesses += summary.NewBusinesses

		zoneReport := BuildZoneReport(zone)
		weightedQualification += zoneReport.QualificationRate * float64(summary.Total)
		weightedCoverage += zoneReport.WebsiteCoverageRate * float64(summary.Total)
	}

	if report.Total > 0 {
		report.QualificationRate = weightedQualification / float64(report.Total)
		report.WebsiteCoverageRate = weightedCoverage / float64(report.Total)
	}

	return report
}

func zoneReportKey(zoneID uuid.UUID) string {
	return "report:zone:" + zoneID.String()
}

func strategyReportKey(strategyID uuid.UUID) string {
	return "report:strategy:" + strategyID.String()
}

func generationKey(base string) string {
	return base + ":gen"
}

// invalidateReportCache bumps the generation of the reports a zone write makes stale.
// Entries under older generations are never read again and expire with their TTL.
func invalidateReportCache(ctx context.Context, cache service.ReportCache, logger *slog.Logger, zone *entity.Zone) {
	if cache == nil {
		return
	}

	for _, base := range []string{zoneReportKey(zone.ID), strategyReportKey(zone.StrategyID)} {
		if _, err := cache.Incr(ctx, generationKey(base)); err != nil {
			logger.Warn("Failed to invalidate report cache",
				slog.String("zoneID", zone.ID.String()),
				slog.String("key", base),
				slog.Any("error", err))
		}
	}
}
