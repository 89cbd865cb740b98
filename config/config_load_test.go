package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_ShippedConfig(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.ShortLink)
	assert.NotEmpty(t, cfg.ShortLink.BaseURL)
	assert.False(t, strings.HasSuffix(strings.TrimRight(cfg.ShortLink.BaseURL, "/"), "/l"),
		"shortLink.baseUrl is an origin, the /l/ route is appended per token")

	require.NotNil(t, cfg.Scraper)
	assert.Positive(t, cfg.Scraper.MaxAttempts)
}
