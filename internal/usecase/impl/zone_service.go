package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"leadgrid/config"
	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"
	"leadgrid/internal/util"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const defaultInitialBackoff = 500 * time.Millisecond

// zoneService implements the ZoneUsecase interface.
type zoneService struct {
	txManager  repository.TransactionManager
	zoneRepo   repository.ZoneRepository
	provider   service.ScrapeProvider
	publisher  service.EventPublisher
	archive    service.RawArchive
	cache      service.ReportCache
	qualifier  *qualifier
	scraperCfg config.ScraperConfig
	logger     *slog.Logger
	now        func() time.Time
}

// ZoneServiceParams holds dependencies for ZoneService, injected by Fx.
type ZoneServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ZoneRepo  repository.ZoneRepository
	Provider  service.ScrapeProvider
	Publisher service.EventPublisher
	Archive   service.RawArchive
	Cache     service.ReportCache
	Config    *config.Config
	Logger    *slog.Logger
}

// NewZoneService is the constructor for zoneService.
func NewZoneService(params ZoneServiceParams) usecase.ZoneUsecase {
	scraperCfg := config.ScraperConfig{}
	var qualificationCfg *config.QualificationConfig
	if params.Config != nil {
		if params.Config.Scraper != nil {
			scraperCfg = *params.Config.Scraper
		}
		qualificationCfg = params.Config.Qualification
	}
	if scraperCfg.MaxAttempts < 1 {
		scraperCfg.MaxAttempts = 1
	}
	if scraperCfg.InitialBackoff <= 0 {
		scraperCfg.InitialBackoff = defaultInitialBackoff
	}

	return &zoneService{
		txManager:  params.TxManager,
		zoneRepo:   params.ZoneRepo,
		provider:   params.Provider,
		publisher:  params.Publisher,
		archive:    params.Archive,
		cache:      params.Cache,
		qualifier:  newQualifier(qualificationCfg),
		scraperCfg: scraperCfg,
		logger:     params.Logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *zoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ScrapeZone claims a pending zone, scrapes and qualifies its businesses and completes it.
func (srv *zoneService) ScrapeZone(ctx context.Context, zoneID uuid.UUID, mode entity.ScrapeMode) (*usecase.ZoneResult, error) {
	if !mode.IsValid() {
		return nil, domainerrors.NewValidationError("mode", "must be draft or live")
	}

	startedAt := srv.now()
	attempt, err := srv.zoneRepo.ClaimForScrape(ctx, zoneID, startedAt)
	if err != nil {
		return nil, srv.claimError(ctx, zoneID, err)
	}

	zone, err := srv.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load claimed zone")
	}

	log := srv.log(ctx).With(slog.String("zoneID", zoneID.String()), slog.String("mode", string(mode)))
	log.Info("Zone claimed for scrape", slog.Int("attempt", attempt))

	scraped, err := srv.search(ctx, zone)
	if err != nil {
		log.Error("Provider query failed", slog.Any("error", err))
		srv.failZone(ctx, zone, attempt, err)

		return nil, errors.Wrap(domainerrors.ErrZoneFailed, err.Error())
	}

	srv.archiveRaw(ctx, zone, startedAt, scraped.Raw)

	candidates := dedupeByExternalID(scraped.Businesses)

	var (
		summary        entity.ZoneSummary
		newlyQualified []uuid.UUID
		draft          *entity.DraftCampaign
	)

	scrapedAt := srv.now()
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		businessRepo := txRepoFactory.NewBusinessRepository()

		externalIDs := make([]string, 0, len(candidates))
		for _, raw := range candidates {
			externalIDs = append(externalIDs, raw.ExternalID)
		}

		existing, err := businessRepo.FindByExternalIDs(ctx, externalIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load existing businesses")
		}

		businesses := make([]*entity.Business, 0, len(candidates))
		for i := range candidates {
			businesses = append(businesses, srv.buildBusiness(zone, &candidates[i]))
		}

		if err := businessRepo.UpsertBatch(ctx, businesses); err != nil {
			return errors.Wrap(err, "failed to upsert businesses")
		}

		summary = entity.ZoneSummary{ScrapedAt: scrapedAt}
		newlyQualified = make([]uuid.UUID, 0)
		for _, business := range businesses {
			summary.Record(business)

			previous, seen := existing[business.ExternalID]
			if !seen {
				summary.NewBusinesses++
			}
			if business.Qualified && (!seen || !previous.Qualified) {
				newlyQualified = append(newlyQualified, business.ID)
			}
		}
		summary.NewlyQualified = len(newlyQualified)

		if mode == entity.ScrapeModeDraft && len(newlyQualified) > 0 {
			draft = &entity.DraftCampaign{
				ID:          uuid.New(),
				StrategyID:  zone.StrategyID,
				ZoneID:      zone.ID,
				Status:      entity.DraftStatusPendingReview,
				BusinessIDs: newlyQualified,
			}
			if err := txRepoFactory.NewDraftCampaignRepository().Create(ctx, draft); err != nil {
				return errors.Wrap(err, "failed to create draft campaign")
			}
		}

		if err := txRepoFactory.NewZoneRepository().MarkCompleted(ctx, zone.ID, attempt, &summary, scrapedAt); err != nil {
			return errors.Wrap(err, "failed to complete zone")
		}

		return nil
	})
	if errors.Is(err, repository.ErrStatusConflict) {
		// The sweeper released this claim and another scrape owns the zone now.
		log.Warn("Zone claim lost before completion, results discarded", slog.Int("attempt", attempt))

		return nil, errors.Wrap(domainerrors.ErrZoneBusy, "zone was released and claimed again")
	}
	if err != nil {
		log.Error("Failed to persist scrape results", slog.Any("error", err))
		srv.failZone(ctx, zone, attempt, err)

		return nil, errors.Wrap(domainerrors.ErrZoneFailed, err.Error())
	}

	zone.Status = entity.ZoneStatusCompleted
	zone.Summary = &summary
	zone.LastScrapedAt = &scrapedAt
	zone.LastError = ""

	result := &usecase.ZoneResult{
		Zone:           zone,
		Summary:        summary,
		NewlyQualified: newlyQualified,
	}
	if draft != nil {
		result.DraftID = &draft.ID
	}

	if mode == entity.ScrapeModeLive && len(newlyQualified) > 0 {
		if err := srv.publishOutreach(ctx, zone, newlyQualified); err != nil {
			log.Warn("Outreach hand-off failed", slog.Int("businesses", len(newlyQualified)), slog.Any("error", err))
			result.OutreachError = err.Error()
		} else {
			result.OutreachPublished = true
		}
	}

	srv.invalidateReports(ctx, zone)

	log.Info("Zone scrape completed",
		slog.Int("total", summary.Total),
		slog.Int("qualified", summary.Qualified),
		slog.Int("newlyQualified", summary.NewlyQualified),
		slog.String("took", util.FormatDuration(srv.now().Sub(startedAt))))

	return result, nil
}

// claimError explains why the pending -> in_progress claim matched no row.
func (srv *zoneService) claimError(ctx context.Context, zoneID uuid.UUID, err error) error {
	if !errors.Is(err, repository.ErrStatusConflict) {
		return errors.Wrap(err, "failed to claim zone")
	}

	zone, findErr := srv.zoneRepo.FindByID(ctx, zoneID)
	if findErr != nil {
		if errors.Is(findErr, repository.ErrZoneNotFound) {
			return domainerrors.ErrZoneNotFound
		}

		return errors.Wrap(findErr, "failed to load zone after claim conflict")
	}

	// A zone that is pending again was released by the sweeper between our claim and this read.
	if zone.Status == entity.ZoneStatusInProgress || zone.Status.CanTransitionTo(entity.ZoneStatusInProgress) {
		return domainerrors.ErrZoneBusy
	}

	return errors.Wrapf(domainerrors.ErrZoneNotScrapeable, "zone is %s", zone.Status)
}

// search queries the provider, retrying transient failures with capped exponential backoff.
func (srv *zoneService) search(ctx context.Context, zone *entity.Zone) (*service.ScrapeResult, error) {
	query := service.ScrapeQuery{
		Center:       zone.Center(),
		RadiusMeters: zone.RadiusMeters(),
		Category:     zone.Category,
		Limit:        srv.scraperCfg.ResultLimit,
	}

	backoff := retry.NewExponential(srv.scraperCfg.InitialBackoff)
	if srv.scraperCfg.MaxBackoff > 0 {
		backoff = retry.WithCappedDuration(srv.scraperCfg.MaxBackoff, backoff)
	}
	backoff = retry.WithMaxRetries(uint64(srv.scraperCfg.MaxAttempts-1), backoff)

	attempt := 0

	return retry.DoValue(ctx, backoff, func(ctx context.Context) (*service.ScrapeResult, error) {
		attempt++

		result, err := srv.provider.Search(ctx, query)
		if err != nil {
			if service.IsTransientProviderError(err) {
				srv.log(ctx).Warn("Transient provider error, retrying",
					slog.String("zoneID", zone.ID.String()),
					slog.Int("attempt", attempt),
					slog.Any("error", err))

				return nil, retry.RetryableError(err)
			}

			return nil, err
		}

		return result, nil
	})
}

// failZone records a terminal failure for the given claim. The zone stays in_progress for
// the sweeper if this write fails, and a claim that was already released is left alone.
func (srv *zoneService) failZone(ctx context.Context, zone *entity.Zone, attempt int, cause error) {
	if err := srv.zoneRepo.MarkFailed(context.WithoutCancel(ctx), zone.ID, attempt, cause.Error()); err != nil {
		srv.log(ctx).Error("Failed to mark zone as failed", slog.String("zoneID", zone.ID.String()), slog.Any("error", err))
	}

	srv.invalidateReports(ctx, zone)
}

func (srv *zoneService) buildBusiness(zone *entity.Zone, raw *service.RawBusiness) *entity.Business {
	score, qualified := srv.qualifier.Score(raw, zone.Category)
	zoneID := zone.ID

	return &entity.Business{
		ID:                 uuid.New(),
		ZoneID:             &zoneID,
		ExternalID:         raw.ExternalID,
		Name:               raw.Name,
		Address:            raw.Address,
		Category:           raw.Category,
		Phone:              raw.Phone,
		Email:              raw.Email,
		Website:            raw.Website,
		Rating:             raw.Rating,
		ReviewCount:        raw.ReviewCount,
		Latitude:           raw.Latitude,
		Longitude:          raw.Longitude,
		QualificationScore: score,
		Qualified:          qualified,
		WebsiteStatus:      srv.qualifier.ClassifyWebsite(raw.Website),
		RawPayload:         raw.Raw,
	}
}

func (srv *zoneService) archiveRaw(ctx context.Context, zone *entity.Zone, startedAt time.Time, raw []byte) {
	if srv.archive == nil || len(raw) == 0 {
		return
	}

	key := fmt.Sprintf("zones/%s/%s.json", zone.ID, startedAt.Format("20060102T150405Z"))
	if err := srv.archive.Put(ctx, key, raw); err != nil {
		srv.log(ctx).Warn("Failed to archive raw provider response", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *zoneService) publishOutreach(ctx context.Context, zone *entity.Zone, businessIDs []uuid.UUID) error {
	event, err := service.NewEvent(service.EventOutreachRequested, deliverycontext.GetRequestIDFromContext(ctx), service.OutreachPayload{
		StrategyID:  zone.StrategyID.String(),
		ZoneID:      zone.ID.String(),
		BusinessIDs: uuidStrings(businessIDs),
	})
	if err != nil {
		return err
	}

	return srv.publisher.Publish(ctx, event)
}

func (srv *zoneService) invalidateReports(ctx context.Context, zone *entity.Zone) {
	invalidateReportCache(ctx, srv.cache, srv.log(ctx), zone)
}

// RetryZone returns a failed zone to pending.
func (srv *zoneService) RetryZone(ctx context.Context, zoneID uuid.UUID) (*entity.Zone, error) {
	if err := srv.zoneRepo.ResetFailed(ctx, zoneID); err != nil {
		if !errors.Is(err, repository.ErrStatusConflict) {
			return nil, errors.Wrap(err, "failed to reset zone")
		}

		if _, findErr := srv.zoneRepo.FindByID(ctx, zoneID); errors.Is(findErr, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound
		}

		return nil, domainerrors.ErrZoneNotRetryable
	}

	zone, err := srv.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load zone after reset")
	}

	srv.invalidateReports(ctx, zone)
	srv.log(ctx).Info("Zone reset for retry", slog.String("zoneID", zoneID.String()))

	return zone, nil
}

// GetZone retrieves a zone by ID.
func (srv *zoneService) GetZone(ctx context.Context, zoneID uuid.UUID) (*entity.Zone, error) {
	zone, err := srv.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone")
	}

	return zone, nil
}

// dedupeByExternalID keeps the first record of every external ID.
func dedupeByExternalID(records []service.RawBusiness) []service.RawBusiness {
	seen := make(map[string]struct{}, len(records))
	unique := make([]service.RawBusiness, 0, len(records))

	for _, record := range records {
		if record.ExternalID == "" {
			continue
		}
		if _, ok := seen[record.ExternalID]; ok {
			continue
		}
		seen[record.ExternalID] = struct{}{}
		unique = append(unique, record)
	}

	return unique
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}
