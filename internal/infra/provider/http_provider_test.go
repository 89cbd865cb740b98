package provider

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadgrid/config"
	"leadgrid/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) service.ScrapeProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Provider: &config.ProviderConfig{
		BaseURL: server.URL,
		APIKey:  "secret",
		Timeout: 5 * time.Second,
	}}

	return NewHTTPProvider(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHTTPProvider_Search(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 25.03, req.Latitude, 1e-9)
		assert.InDelta(t, 121.56, req.Longitude, 1e-9)
		assert.Equal(t, "plumbing", req.Category)

		_, _ = w.Write([]byte(`{"results":[
			{"external_id":"p1","name":"Pipe Pros","phone":"123","rating":4.6,"review_count":20},
			{"name":"no id"},
			{"external_id":"p2","name":"Drain Co","website":"https://drain.example"}
		]}`))
	})

	result, err := p.Search(context.Background(), service.ScrapeQuery{
		Center:       orb.Point{121.56, 25.03},
		RadiusMeters: 1500,
		Category:     "plumbing",
		Limit:        50,
	})
	require.NoError(t, err)
	require.Len(t, result.Businesses, 2)
	assert.Equal(t, "p1", result.Businesses[0].ExternalID)
	assert.Equal(t, 20, result.Businesses[0].ReviewCount)
	assert.NotEmpty(t, result.Businesses[0].Raw)
	assert.Equal(t, "https://drain.example", result.Businesses[1].Website)
	assert.NotEmpty(t, result.Raw)
}

func TestHTTPProvider_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		transient bool
	}{
		{name: "server error is transient", status: http.StatusBadGateway, transient: true},
		{name: "rate limit is transient", status: http.StatusTooManyRequests, transient: true},
		{name: "bad request is permanent", status: http.StatusBadRequest, body: `{"error":"bad category"}`},
		{name: "malformed body is permanent", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := p.Search(context.Background(), service.ScrapeQuery{Category: "x"})
			require.Error(t, err)

			var providerErr *service.ProviderError
			require.ErrorAs(t, err, &providerErr)
			assert.Equal(t, tt.transient, service.IsTransientProviderError(err))
		})
	}
}

func TestHTTPProvider_ConnectionFailureIsTransient(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	cfg := &config.Config{Provider: &config.ProviderConfig{BaseURL: url, Timeout: time.Second}}
	p := NewHTTPProvider(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.Search(context.Background(), service.ScrapeQuery{})
	require.Error(t, err)
	assert.True(t, service.IsTransientProviderError(err))
}
