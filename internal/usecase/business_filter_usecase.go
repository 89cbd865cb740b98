package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessSearchInput is a filtered business search request.
type BusinessSearchInput struct {
	PresetID *uuid.UUID
	Filter   entity.FilterSpec
	Page     int
	PageSize int
}

// BusinessSearchResult is one page of matching businesses and the filter that produced it.
type BusinessSearchResult struct {
	Businesses    []*entity.Business `json:"businesses"`
	AppliedFilter entity.FilterSpec  `json:"applied_filter"`
	Page          int                `json:"page"`
	PageSize      int                `json:"page_size"`
	Total         int64              `json:"total"`
}

// ExportFile is a rendered business export.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

// CreatePresetInput holds the fields of a new filter preset.
type CreatePresetInput struct {
	Name     string
	IsPublic bool
	Filter   entity.FilterSpec
}

// BusinessFilterUsecase defines the interface for business search and filter presets
type BusinessFilterUsecase interface {
	// Search returns one page of businesses matching the merged preset and explicit filter
	Search(ctx context.Context, callerID uuid.UUID, input *BusinessSearchInput) (*BusinessSearchResult, error)

	// Export renders every business matching the filter, up to the export limit
	Export(ctx context.Context, callerID uuid.UUID, input *BusinessSearchInput) (*ExportFile, error)

	// CreatePreset validates and stores a filter preset owned by the caller
	CreatePreset(ctx context.Context, ownerID uuid.UUID, input *CreatePresetInput) (*entity.FilterPreset, error)

	// ListPresets returns the presets owned by the caller or marked public
	ListPresets(ctx context.Context, callerID uuid.UUID) ([]*entity.FilterPreset, error)

	// DeletePreset removes a preset owned by the caller
	DeletePreset(ctx context.Context, callerID, presetID uuid.UUID) error
}
