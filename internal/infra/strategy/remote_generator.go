package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"leadgrid/config"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"

	"github.com/go-resty/resty/v2"
)

const generatePath = "/v1/strategies:generate"

type generateRequest struct {
	Region   string     `json:"region"`
	Category string     `json:"category"`
	Bounds   [4]float64 `json:"bounds"` // min_lng, min_lat, max_lng, max_lat
}

// remoteGenerator asks the strategy collaborator over HTTP. The response must
// match the proposal schema exactly; unknown fields are rejected.
type remoteGenerator struct {
	client *resty.Client
	logger *slog.Logger
}

// NewRemoteGenerator creates the HTTP strategy collaborator client from strategy.* configuration.
func NewRemoteGenerator(cfg *config.StrategyConfig, logger *slog.Logger) service.StrategyGenerator {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &remoteGenerator{
		client: client,
		logger: logger,
	}
}

// Generate requests a proposal for the market.
func (g *remoteGenerator) Generate(ctx context.Context, market entity.MarketDescriptor) (*service.StrategyProposal, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Region:   market.Region,
			Category: market.Category,
			Bounds: [4]float64{
				market.Bounds.Min.Lon(), market.Bounds.Min.Lat(),
				market.Bounds.Max.Lon(), market.Bounds.Max.Lat(),
			},
		}).
		Post(generatePath)
	if err != nil {
		return nil, errors.Wrap(err, "strategy collaborator request failed")
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("strategy collaborator returned %d", resp.StatusCode())
	}

	decoder := json.NewDecoder(bytes.NewReader(resp.Body()))
	decoder.DisallowUnknownFields()

	var proposal service.StrategyProposal
	if err := decoder.Decode(&proposal); err != nil {
		g.logger.Warn("Strategy collaborator returned malformed proposal",
			slog.String("region", market.Region),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "malformed strategy proposal")
	}

	return &proposal, nil
}
