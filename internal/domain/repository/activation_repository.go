package repository

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for activation persistence.
var (
	// ErrActivationNotFound is returned when an activation is not found.
	ErrActivationNotFound = errors.New("activation not found")
	// ErrDuplicateActivation is returned when the transaction id was already recorded.
	ErrDuplicateActivation = errors.New("activation already exists")
)

// ActivationRepository defines the interface for activation persistence.
type ActivationRepository interface {
	// Create records a new activation holding the processing lease until lockedUntil.
	// Returns ErrDuplicateActivation when the transaction id is already recorded.
	Create(ctx context.Context, activation *entity.Activation) error

	// FindByTransactionID retrieves an activation by transaction id.
	FindByTransactionID(ctx context.Context, txID string) (*entity.Activation, error)

	// AcquireLease takes the processing lease of a processing activation whose
	// previous lease expired before now. Returns false when another holder has it.
	AcquireLease(ctx context.Context, id uuid.UUID, now, lockedUntil time.Time) (bool, error)

	// SaveProgress persists the pipeline fields and status, releasing the lease
	// when the status is terminal.
	SaveProgress(ctx context.Context, activation *entity.Activation) error

	// MarkNotified stamps notified_at once. Returns false if it was already set.
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// ListByStatus returns activations in the given statuses, newest first.
	ListByStatus(ctx context.Context, statuses []entity.ActivationStatus, limit int) ([]*entity.Activation, error)
}
