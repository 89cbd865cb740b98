package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the state of the recurring charge for a site.
type SubscriptionStatus string

const (
	SubscriptionStatusNone    SubscriptionStatus = "none"
	SubscriptionStatusPending SubscriptionStatus = "pending"
	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusFailed  SubscriptionStatus = "failed"
)

// Subscription is the recurring billing record of a site. At most one exists per site.
type Subscription struct {
	ID                     uuid.UUID          `json:"id"`
	SiteID                 uuid.UUID          `json:"site_id"`
	CustomerID             uuid.UUID          `json:"customer_id"`
	ProviderSubscriptionID string             `json:"provider_subscription_id,omitempty"`
	Status                 SubscriptionStatus `json:"status"`
	NextChargeAt           *time.Time         `json:"next_charge_at,omitempty"`
	FailureReason          string             `json:"failure_reason,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}
