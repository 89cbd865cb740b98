package repository

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFilterPresetNotFound is returned when a filter preset is not found.
var ErrFilterPresetNotFound = errors.New("filter preset not found")

// FilterPresetRepository defines the interface for filter preset persistence.
type FilterPresetRepository interface {
	// Create persists a new preset.
	Create(ctx context.Context, preset *entity.FilterPreset) error

	// FindByID retrieves a preset by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FilterPreset, error)

	// ListVisible returns presets owned by the caller or marked public.
	ListVisible(ctx context.Context, callerID uuid.UUID) ([]*entity.FilterPreset, error)

	// Delete removes a preset owned by ownerID.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
