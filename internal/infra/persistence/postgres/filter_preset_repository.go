package postgres

import (
	"context"
	"encoding/json"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	"leadgrid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// filterPresetRepository implements the repository.FilterPresetRepository interface.
type filterPresetRepository struct {
	db *gorm.DB
}

// NewFilterPresetRepository is the constructor for filterPresetRepository.
func NewFilterPresetRepository(db *gorm.DB) repository.FilterPresetRepository {
	return &filterPresetRepository{db: db}
}

// Create persists a new preset.
func (repo *filterPresetRepository) Create(ctx context.Context, preset *entity.FilterPreset) error {
	presetM, err := fromFilterPresetDomain(preset)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(presetM).Error; err != nil {
		return translateError(err, "failed to create filter preset")
	}

	preset.ID = presetM.ID
	preset.CreatedAt = presetM.CreatedAt

	return nil
}

// FindByID retrieves a preset by its ID.
func (repo *filterPresetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FilterPreset, error) {
	var presetM model.FilterPresetModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&presetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterPresetNotFound
		}

		return nil, translateError(err, "failed to find filter preset by ID")
	}

	return toFilterPresetDomain(&presetM)
}

// ListVisible returns presets owned by the caller or marked public.
func (repo *filterPresetRepository) ListVisible(ctx context.Context, callerID uuid.UUID) ([]*entity.FilterPreset, error) {
	var presetModels []*model.FilterPresetModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? OR is_public = ?", callerID, true).
		Order("created_at DESC").
		Find(&presetModels).Error; err != nil {
		return nil, translateError(err, "failed to list filter presets")
	}

	presets := make([]*entity.FilterPreset, 0, len(presetModels))
	for _, presetM := range presetModels {
		preset, err := toFilterPresetDomain(presetM)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}

	return presets, nil
}

// Delete removes a preset owned by ownerID.
func (repo *filterPresetRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.FilterPresetModel{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete filter preset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFilterPresetNotFound
	}

	return nil
}

// toFilterPresetDomain converts a GORM FilterPresetModel to a domain FilterPreset entity.
func toFilterPresetDomain(data *model.FilterPresetModel) (*entity.FilterPreset, error) {
	filter := entity.FilterSpec{}
	if len(data.Filter) > 0 {
		if err := json.Unmarshal(data.Filter, &filter); err != nil {
			return nil, errors.Wrapf(err, "failed to decode filter of preset %s", data.ID)
		}
	}

	return &entity.FilterPreset{
		ID:        data.ID,
		Name:      data.Name,
		OwnerID:   data.OwnerID,
		IsPublic:  data.IsPublic,
		Filter:    filter,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromFilterPresetDomain converts a domain FilterPreset entity to a GORM FilterPresetModel.
func fromFilterPresetDomain(data *entity.FilterPreset) (*model.FilterPresetModel, error) {
	filter := data.Filter
	if filter == nil {
		filter = entity.FilterSpec{}
	}

	encoded, err := json.Marshal(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode preset filter")
	}

	return &model.FilterPresetModel{
		ID:        data.ID,
		Name:      data.Name,
		OwnerID:   data.OwnerID,
		IsPublic:  data.IsPublic,
		Filter:    encoded,
		CreatedAt: data.CreatedAt,
	}, nil
}
