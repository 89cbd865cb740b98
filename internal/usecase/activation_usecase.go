package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"
)

// ActivationResult is the outcome of processing one payment event.
type ActivationResult struct {
	Activation *entity.Activation `json:"activation"`
	// Duplicate is set when the transaction was already processed by an earlier delivery.
	Duplicate bool   `json:"duplicate"`
	ShortURL  string `json:"short_url,omitempty"`
}

// ActivationUsecase defines the interface for the payment activation pipeline
type ActivationUsecase interface {
	// Activate transfers site ownership, creates the recurring subscription and issues the site link
	Activate(ctx context.Context, event *entity.PaymentEvent) (*ActivationResult, error)

	// GetActivation retrieves the activation of a transaction
	GetActivation(ctx context.Context, transactionID string) (*entity.Activation, error)

	// ListActivations returns activations in the given statuses, newest first
	ListActivations(ctx context.Context, statuses []entity.ActivationStatus, limit int) ([]*entity.Activation, error)
}
