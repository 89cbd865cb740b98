package repository

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for subscription persistence.
type SubscriptionRepository interface {
	// Claim inserts a pending subscription for the site unless one exists and
	// returns the stored row. The unique site_id keeps one subscription per site.
	Claim(ctx context.Context, sub *entity.Subscription) (stored *entity.Subscription, created bool, err error)

	// FindBySite retrieves the subscription of a site.
	FindBySite(ctx context.Context, siteID uuid.UUID) (*entity.Subscription, error)

	// MarkActive records the provider subscription on a pending or failed row.
	MarkActive(ctx context.Context, id uuid.UUID, providerSubscriptionID string, nextChargeAt *time.Time) error

	// MarkFailed records a provider rejection on a pending row.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}
