package impl

import (
	"context"
	"log/slog"
	"time"

	"leadgrid/internal/errors"
)

const defaultStaleThreshold = 30 * time.Minute

// ReleaseStaleZones returns zones stuck in progress past the staleness threshold to pending.
func (srv *zoneService) ReleaseStaleZones(ctx context.Context) (int, error) {
	threshold := srv.scraperCfg.StaleThreshold
	if threshold <= 0 {
		threshold = defaultStaleThreshold
	}

	cutoff := srv.now().Add(-threshold)

	released, err := srv.zoneRepo.ReleaseStale(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to release stale zones")
	}

	for _, zone := range released {
		srv.log(ctx).Warn("Released stale zone",
			slog.String("zoneID", zone.ID.String()),
			slog.String("strategyID", zone.StrategyID.String()),
			slog.Int("attempts", zone.Attempts))
		srv.invalidateReports(ctx, zone)
	}

	return len(released), nil
}
