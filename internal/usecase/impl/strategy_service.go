package impl

import (
	"context"
	"log/slog"
	"sort"

	"leadgrid/config"
	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultListLimit   = 20
	maxListLimit       = 100
	defaultDispatchCap = 8
)

// strategyService implements the StrategyUsecase interface.
type strategyService struct {
	txManager           repository.TransactionManager
	strategyRepo        repository.StrategyRepository
	zoneRepo            repository.ZoneRepository
	generator           service.StrategyGenerator
	publisher           service.EventPublisher
	validate            *validator.Validate
	maxAttempts         int
	dispatchConcurrency int
	logger              *slog.Logger
}

// StrategyServiceParams holds dependencies for StrategyService, injected by Fx.
type StrategyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	StrategyRepo repository.StrategyRepository
	ZoneRepo     repository.ZoneRepository
	Generator    service.StrategyGenerator
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStrategyService is the constructor for strategyService.
func NewStrategyService(params StrategyServiceParams) usecase.StrategyUsecase {
	maxAttempts := 1
	dispatchConcurrency := defaultDispatchCap
	if params.Config != nil {
		if params.Config.Strategy != nil && params.Config.Strategy.MaxAttempts > 0 {
			maxAttempts = params.Config.Strategy.MaxAttempts
		}
		if params.Config.Scraper != nil && params.Config.Scraper.DispatchConcurrency > 0 {
			dispatchConcurrency = params.Config.Scraper.DispatchConcurrency
		}
	}

	return &strategyService{
		txManager:           params.TxManager,
		strategyRepo:        params.StrategyRepo,
		zoneRepo:            params.ZoneRepo,
		generator:           params.Generator,
		publisher:           params.Publisher,
		validate:            newJSONValidator(),
		maxAttempts:         maxAttempts,
		dispatchConcurrency: dispatchConcurrency,
		logger:              params.Logger,
	}
}

func (srv *strategyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStrategy asks the generator for a proposal and persists the strategy with its zones atomically.
func (srv *strategyService) CreateStrategy(ctx context.Context, market entity.MarketDescriptor) (*usecase.StrategyDetail, error) {
	if err := validateMarket(market); err != nil {
		return nil, err
	}

	proposal, err := srv.generate(ctx, market)
	if err != nil {
		return nil, err
	}

	strategy := &entity.Strategy{
		ID:        uuid.New(),
		Name:      proposal.Name,
		Region:    market.Region,
		Category:  market.Category,
		Bounds:    market.Bounds,
		Rationale: proposal.Rationale,
		Status:    entity.StrategyStatusDraft,
	}

	zones := make([]*entity.Zone, 0, len(proposal.Zones))
	for _, zp := range proposal.Zones {
		category := zp.Category
		if category == "" {
			category = market.Category
		}

		zones = append(zones, &entity.Zone{
			ID:         uuid.New(),
			StrategyID: strategy.ID,
			Name:       zp.Name,
			Category:   category,
			Bounds: orb.Bound{
				Min: orb.Point{zp.MinLng, zp.MinLat},
				Max: orb.Point{zp.MaxLng, zp.MaxLat},
			},
			Priority: zp.Priority,
			Status:   entity.ZoneStatusPending,
		})
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewStrategyRepository().Create(ctx, strategy); err != nil {
			return errors.Wrap(err, "failed to create strategy")
		}

		for _, zone := range zones {
			zone.StrategyID = strategy.ID
		}

		if err := txRepoFactory.NewZoneRepository().CreateBatch(ctx, zones); err != nil {
			return errors.Wrap(err, "failed to create zones")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist strategy", slog.String("region", market.Region), slog.Any("error", err))

		return nil, err
	}

	sortZonesByPriority(zones)

	srv.log(ctx).Info("Strategy created",
		slog.String("strategyID", strategy.ID.String()),
		slog.String("region", market.Region),
		slog.Int("zones", len(zones)))

	return &usecase.StrategyDetail{Strategy: strategy, Zones: zones}, nil
}

// generate requests proposals until one passes validation or the attempts run out.
func (srv *strategyService) generate(ctx context.Context, market entity.MarketDescriptor) (*service.StrategyProposal, error) {
	var lastErr error

	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		proposal, err := srv.generator.Generate(ctx, market)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = err
			srv.log(ctx).Warn("Strategy generation failed", slog.Int("attempt", attempt), slog.Any("error", err))

			continue
		}

		if proposal == nil {
			lastErr = errors.New("generator returned no proposal")

			continue
		}

		if err := srv.validate.Struct(proposal); err != nil {
			lastErr = errors.Wrap(err, "malformed strategy proposal")
			srv.log(ctx).Warn("Rejected malformed strategy proposal", slog.Int("attempt", attempt), slog.Any("error", err))

			continue
		}

		return proposal, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no generation attempts")
	}

	return nil, errors.Wrap(domainerrors.ErrStrategyGenerationFailed, lastErr.Error())
}

// GetStrategy retrieves a strategy and its zones.
func (srv *strategyService) GetStrategy(ctx context.Context, id uuid.UUID) (*usecase.StrategyDetail, error) {
	strategy, err := srv.findStrategy(ctx, id)
	if err != nil {
		return nil, err
	}

	zones, err := srv.zoneRepo.ListByStrategy(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list strategy zones")
	}

	return &usecase.StrategyDetail{Strategy: strategy, Zones: zones}, nil
}

// ListStrategies returns strategies, newest first.
func (srv *strategyService) ListStrategies(ctx context.Context, limit, offset int) ([]*entity.Strategy, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	strategies, err := srv.strategyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list strategies")
	}

	return strategies, nil
}

// ChangeStatus moves a strategy along its lifecycle.
func (srv *strategyService) ChangeStatus(ctx context.Context, id uuid.UUID, status entity.StrategyStatus) (*entity.Strategy, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError("status", "must be draft, active or archived")
	}

	strategy, err := srv.findStrategy(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strategy.Status.CanTransitionTo(status) {
		return nil, errors.Wrapf(domainerrors.ErrStrategyTransitionInvalid, "%s -> %s", strategy.Status, status)
	}

	if err := srv.strategyRepo.UpdateStatus(ctx, id, strategy.Status, status); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, errors.Wrap(domainerrors.ErrStrategyTransitionInvalid, "strategy changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to update strategy status")
	}

	srv.log(ctx).Info("Strategy status changed",
		slog.String("strategyID", id.String()),
		slog.String("from", string(strategy.Status)),
		slog.String("to", string(status)))

	strategy.Status = status

	return strategy, nil
}

// DispatchScrapes publishes one scrape message per pending zone. A failed publish never aborts its siblings.
func (srv *strategyService) DispatchScrapes(ctx context.Context, id uuid.UUID, mode entity.ScrapeMode) (*usecase.DispatchResult, error) {
	if !mode.IsValid() {
		return nil, domainerrors.NewValidationError("mode", "must be draft or live")
	}

	strategy, err := srv.findStrategy(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strategy.CanDispatch() {
		return nil, domainerrors.ErrStrategyArchived
	}

	zones, err := srv.zoneRepo.ListByStrategyAndStatus(ctx, id, entity.ZoneStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending zones")
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	publishErrs := make([]error, len(zones))

	g := new(errgroup.Group)
	g.SetLimit(srv.dispatchConcurrency)

	for i, zone := range zones {
		g.Go(func() error {
			event, err := service.NewEvent(service.EventZoneScrape, requestID, service.ZoneScrapePayload{
				ZoneID:     zone.ID.String(),
				StrategyID: strategy.ID.String(),
				Mode:       string(mode),
			})
			if err == nil {
				err = srv.publisher.Publish(ctx, event)
			}
			publishErrs[i] = err

			return nil
		})
	}
	_ = g.Wait()

	result := &usecase.DispatchResult{
		StrategyID: id,
		Mode:       mode,
		Dispatched: make([]uuid.UUID, 0, len(zones)),
		Failed:     make([]usecase.DispatchFailure, 0),
	}

	for i, zone := range zones {
		if publishErrs[i] != nil {
			srv.log(ctx).Warn("Failed to dispatch zone scrape", slog.String("zoneID", zone.ID.String()), slog.Any("error", publishErrs[i]))
			result.Failed = append(result.Failed, usecase.DispatchFailure{ZoneID: zone.ID, Reason: publishErrs[i].Error()})

			continue
		}
		result.Dispatched = append(result.Dispatched, zone.ID)
	}

	srv.log(ctx).Info("Strategy scrapes dispatched",
		slog.String("strategyID", id.String()),
		slog.Int("dispatched", len(result.Dispatched)),
		slog.Int("failed", len(result.Failed)))

	return result, nil
}

func (srv *strategyService) findStrategy(ctx context.Context, id uuid.UUID) (*entity.Strategy, error) {
	strategy, err := srv.strategyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStrategyNotFound) {
			return nil, domainerrors.ErrStrategyNotFound
		}

		return nil, errors.Wrap(err, "failed to find strategy")
	}

	return strategy, nil
}

func validateMarket(market entity.MarketDescriptor) error {
	switch {
	case market.Region == "":
		return domainerrors.NewValidationError("region", "is required")
	case market.Category == "":
		return domainerrors.NewValidationError("category", "is required")
	case market.Bounds.IsEmpty() || market.Bounds.Left() == market.Bounds.Right() || market.Bounds.Bottom() == market.Bounds.Top():
		return domainerrors.NewValidationError("bounds", "must cover a non-empty area")
	case market.Bounds.Min.Lat() < -90 || market.Bounds.Max.Lat() > 90:
		return domainerrors.NewValidationError("bounds", "latitude out of range")
	case market.Bounds.Min.Lon() < -180 || market.Bounds.Max.Lon() > 180:
		return domainerrors.NewValidationError("bounds", "longitude out of range")
	}

	return nil
}

// sortZonesByPriority orders zones by descending priority, keeping generator order for ties.
func sortZonesByPriority(zones []*entity.Zone) {
	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].Priority > zones[j].Priority
	})
}
