package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Scraper)
	assert.Equal(t, 3, cfg.Scraper.MaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Scraper.StaleThreshold)
	assert.Equal(t, time.Minute, cfg.Scraper.SweepInterval)
	assert.Equal(t, 8, cfg.Scraper.DispatchConcurrency)

	assert.Equal(t, "grid", cfg.Strategy.Generator)
	assert.Equal(t, 60, cfg.Qualification.Threshold)
	assert.Equal(t, 7, cfg.ShortLink.TokenLength)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, 100, cfg.Filter.MaxPageSize)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
	assert.Equal(t, time.Minute, cfg.Activation.LeaseDuration)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Scraper:  &ScraperConfig{MaxAttempts: 5, SweepInterval: 10 * time.Second},
		Strategy: &StrategyConfig{Generator: "remote", MaxZones: 50},
		Filter:   &FilterConfig{MaxPageSize: 500},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, 5, cfg.Scraper.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Scraper.SweepInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Scraper.InitialBackoff)
	assert.Equal(t, "remote", cfg.Strategy.Generator)
	assert.Equal(t, 50, cfg.Strategy.MaxZones)
	assert.Equal(t, 13, cfg.Strategy.GridZoom)
	assert.Equal(t, 500, cfg.Filter.MaxPageSize)
	assert.Equal(t, 20, cfg.Filter.DefaultPageSize)
}
