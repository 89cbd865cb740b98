package strategy

import (
	"log/slog"

	"leadgrid/config"
	"leadgrid/internal/domain/constants"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
)

// NewStrategyGenerator selects the generator named by strategy.generator.
func NewStrategyGenerator(cfg *config.Config, logger *slog.Logger) (service.StrategyGenerator, error) {
	strategyCfg := cfg.Strategy
	if strategyCfg == nil {
		strategyCfg = &config.StrategyConfig{Generator: constants.StrategyGeneratorGrid}
	}

	switch strategyCfg.Generator {
	case "", constants.StrategyGeneratorGrid:
		logger.Info("Using grid strategy generator",
			slog.Int("zoom", strategyCfg.GridZoom),
			slog.Int("max_zones", strategyCfg.MaxZones),
		)

		return NewGridGenerator(strategyCfg.GridZoom, strategyCfg.MaxZones), nil

	case constants.StrategyGeneratorRemote:
		if strategyCfg.BaseURL == "" {
			return nil, errors.New("strategy.baseUrl is required for the remote generator")
		}
		logger.Info("Using remote strategy generator", slog.String("base_url", strategyCfg.BaseURL))

		return NewRemoteGenerator(strategyCfg, logger), nil

	default:
		return nil, errors.Errorf("unknown strategy generator: %s", strategyCfg.Generator)
	}
}
