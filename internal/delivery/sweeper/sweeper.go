// Package sweeper periodically returns zones stuck in progress to pending.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"leadgrid/config"
	"leadgrid/internal/delivery"
	"leadgrid/internal/domain/lifecycle"
	"leadgrid/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

type sweeper struct {
	zoneUC   usecase.ZoneUsecase
	interval time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// SweeperParams holds dependencies for the stale zone sweeper
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	ZoneUC usecase.ZoneUsecase
}

// NewSweeper creates the sweeper delivery and registers its shutdown hook.
func NewSweeper(params SweeperParams) delivery.Delivery {
	interval := defaultSweepInterval
	if params.Cfg.Scraper != nil && params.Cfg.Scraper.SweepInterval > 0 {
		interval = params.Cfg.Scraper.SweepInterval
	}

	s := &sweeper{
		zoneUC:   params.ZoneUC,
		interval: interval,
		logger:   params.Logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve sweeps once per interval until ctx is done or the sweeper is stopped.
func (s *sweeper) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	s.logger.Info("Starting stale zone sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	released, err := s.zoneUC.ReleaseStaleZones(sweepCtx)
	if err != nil {
		s.logger.Error("Failed to release stale zones", slog.Any("error", err))

		return
	}

	if released > 0 {
		s.logger.Info("Released stale zones", slog.Int("released", released))
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	close(s.stopCh)

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down stale zone sweeper")

	select {
	case <-s.doneCh:
	case <-shutdownCtx.Done():
	}

	return nil
}
