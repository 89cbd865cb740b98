// Package provider implements the ScrapeProvider boundary over the listing provider's HTTP API.
package provider

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"leadgrid/config"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"

	"github.com/go-resty/resty/v2"
)

const searchPath = "/v1/places/search"

type searchRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	Category     string  `json:"category"`
	Limit        int     `json:"limit,omitempty"`
}

type searchResponse struct {
	Results []json.RawMessage `json:"results"`
}

// httpProvider implements service.ScrapeProvider with resty.
type httpProvider struct {
	client *resty.Client
	logger *slog.Logger
}

// NewHTTPProvider creates the provider client from provider.* configuration.
// Retries are left to the caller so the scrape backoff policy applies once.
func NewHTTPProvider(cfg *config.Config, logger *slog.Logger) service.ScrapeProvider {
	providerCfg := cfg.Provider
	if providerCfg == nil {
		providerCfg = &config.ProviderConfig{}
	}

	client := resty.New().
		SetBaseURL(providerCfg.BaseURL).
		SetTimeout(providerCfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if providerCfg.APIKey != "" {
		client.SetAuthToken(providerCfg.APIKey)
	}

	return &httpProvider{
		client: client,
		logger: logger,
	}
}

// Search queries the provider. Network failures, 429 and 5xx are transient; other failures are permanent.
func (p *httpProvider) Search(ctx context.Context, query service.ScrapeQuery) (*service.ScrapeResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(searchRequest{
			Latitude:     query.Center.Lat(),
			Longitude:    query.Center.Lon(),
			RadiusMeters: query.RadiusMeters,
			Category:     query.Category,
			Limit:        query.Limit,
		}).
		Post(searchPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, service.NewTransientProviderError(0, errors.Wrap(err, "provider request failed"))
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return nil, service.NewTransientProviderError(status, errors.Errorf("provider returned %d", status))
	case status >= http.StatusBadRequest:
		return nil, service.NewPermanentProviderError(status, errors.Errorf("provider returned %d: %s", status, truncate(resp.String(), 256)))
	}

	body := resp.Body()

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, service.NewPermanentProviderError(status, errors.Wrap(err, "failed to decode provider response"))
	}

	businesses := make([]service.RawBusiness, 0, len(decoded.Results))
	for _, raw := range decoded.Results {
		var business service.RawBusiness
		if err := json.Unmarshal(raw, &business); err != nil {
			p.logger.Warn("Skipping malformed provider record", slog.Any("error", err))

			continue
		}
		if business.ExternalID == "" {
			p.logger.Warn("Skipping provider record without external_id")

			continue
		}
		business.Raw = raw
		businesses = append(businesses, business)
	}

	p.logger.Debug("Provider search finished",
		slog.String("category", query.Category),
		slog.Float64("radius_meters", query.RadiusMeters),
		slog.Int("results", len(businesses)),
	)

	return &service.ScrapeResult{
		Businesses: businesses,
		Raw:        body,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
