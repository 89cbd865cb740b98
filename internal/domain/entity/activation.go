package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivationStatus is the outcome of processing one payment transaction.
type ActivationStatus string

const (
	ActivationStatusProcessing    ActivationStatus = "processing"
	ActivationStatusSucceeded     ActivationStatus = "succeeded"
	ActivationStatusFailed        ActivationStatus = "failed"
	ActivationStatusBillingFailed ActivationStatus = "billing_failed"
)

// IsTerminal reports whether no further pipeline work happens for this status.
func (s ActivationStatus) IsTerminal() bool {
	return s != ActivationStatusProcessing
}

// Activation failure reasons
const (
	ActivationReasonSiteNotFound      = "site_not_found"
	ActivationReasonOwnershipConflict = "ownership_conflict"
	ActivationReasonPaymentRejected   = "payment_rejected"
)

// PaymentEvent is a verified payment-succeeded notification.
type PaymentEvent struct {
	TransactionID      string   `json:"transaction_id" validate:"required,max=255"`
	SiteID             string   `json:"site_id" validate:"required,uuid"`
	CustomerEmail      string   `json:"customer_email" validate:"required,email"`
	CustomerName       string   `json:"customer_name" validate:"max=255"`
	PaymentMethodToken string   `json:"payment_method_token" validate:"required"`
	Amount             int64    `json:"amount" validate:"gte=0"`
	Currency           string   `json:"currency" validate:"omitempty,len=3"`
	Metadata           Metadata `json:"metadata,omitempty"`
}

// Metadata carries free-form provider attributes.
type Metadata map[string]string

// Activation records the processing of one payment transaction. The unique
// transaction id makes reprocessing a no-op.
type Activation struct {
	ID                 uuid.UUID        `json:"id"`
	TransactionID      string           `json:"transaction_id"`
	SiteID             uuid.UUID        `json:"site_id"`
	CustomerEmail      string           `json:"customer_email"`
	CustomerName       string           `json:"customer_name,omitempty"`
	PaymentMethodToken string           `json:"-"`
	Amount             int64            `json:"amount"`
	Currency           string           `json:"currency"`
	Status             ActivationStatus `json:"status"`
	FailureReason      string           `json:"failure_reason,omitempty"`
	CustomerID         *uuid.UUID       `json:"customer_id,omitempty"`
	SubscriptionID     *uuid.UUID       `json:"subscription_id,omitempty"`
	ShortLinkToken     string           `json:"short_link_token,omitempty"`
	Attempts           int              `json:"attempts"`
	LockedUntil        *time.Time       `json:"-"`
	NotifiedAt         *time.Time       `json:"notified_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
}
