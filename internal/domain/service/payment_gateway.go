package service

import (
	"context"
	"fmt"
	"time"
)

// RecurringSubscriptionRequest asks the payment provider to start a recurring charge.
type RecurringSubscriptionRequest struct {
	IdempotencyKey     string
	CustomerEmail      string
	CustomerName       string
	PaymentMethodToken string
	PlanID             string
	Amount             int64
	Currency           string
	Metadata           map[string]string
}

// ProviderSubscription is the provider's view of a created subscription.
type ProviderSubscription struct {
	ID           string
	Status       string
	NextChargeAt *time.Time
}

// PaymentRejectedError is a permanent refusal by the payment provider.
type PaymentRejectedError struct {
	Code   string
	Reason string
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("payment rejected (%s): %s", e.Code, e.Reason)
}

// PaymentGateway defines the boundary to the payment provider.
type PaymentGateway interface {
	// CreateRecurringSubscription creates a subscription; repeated calls with the
	// same idempotency key return the same subscription.
	CreateRecurringSubscription(ctx context.Context, req *RecurringSubscriptionRequest) (*ProviderSubscription, error)
}
