package entity

import (
	"time"

	"github.com/google/uuid"
)

// SiteStatus is the ownership state of a generated site. preview -> owned is one-way.
type SiteStatus string

const (
	SiteStatusPreview SiteStatus = "preview"
	SiteStatusOwned   SiteStatus = "owned"
)

// Site is a previewable web asset generated for a business.
type Site struct {
	ID              uuid.UUID  `json:"id"`
	BusinessID      uuid.UUID  `json:"business_id"`
	Slug            string     `json:"slug"`
	Status          SiteStatus `json:"status"`
	OwnerCustomerID *uuid.UUID `json:"owner_customer_id,omitempty"`
	OwnershipTxID   string     `json:"ownership_tx_id,omitempty"`
	OwnedAt         *time.Time `json:"owned_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Customer is the paying owner of one or more sites.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"` // Normalized to lower case, unique.
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedByTx  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
