package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"leadgrid/config"
	"leadgrid/internal/domain/repository"
	mockRepo "leadgrid/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Scraper: &config.ScraperConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     2 * time.Millisecond,
			ResultLimit:    50,
			StaleThreshold: 30 * time.Minute,

			DispatchConcurrency: 4,
		},
		Qualification: &config.QualificationConfig{
			Threshold:   60,
			MinRating:   4.0,
			MinReviews:  10,
			ReviewHosts: []string{"yelp.com", "facebook.com"},
		},
		Strategy: &config.StrategyConfig{MaxAttempts: 2},
		Activation: &config.ActivationConfig{
			LeaseDuration:  time.Minute,
			StorageRetries: 2,
			RetryBackoff:   time.Millisecond,
		},
		Payment:   &config.PaymentConfig{PlanID: "plan_basic"},
		Sites:     &config.SitesConfig{BaseURL: "https://sites.example.com/"},
		ShortLink: &config.ShortLinkConfig{BaseURL: "https://go.example.com", TokenLength: 7, MaxIssueAttempts: 3},
		Filter:    &config.FilterConfig{DefaultPageSize: 20, MaxPageSize: 100, ExportLimit: 1000},
		Cache:     &config.CacheConfig{ReportTTL: time.Minute},
	}
}

// runInTx makes the transaction manager run its callback against factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
