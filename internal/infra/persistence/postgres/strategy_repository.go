package postgres

import (
	"context"

	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	"leadgrid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// strategyRepository implements the repository.StrategyRepository interface.
type strategyRepository struct {
	db *gorm.DB
}

// NewStrategyRepository is the constructor for strategyRepository.
func NewStrategyRepository(db *gorm.DB) repository.StrategyRepository {
	return &strategyRepository{db: db}
}

// Create persists a new strategy.
func (repo *strategyRepository) Create(ctx context.Context, strategy *entity.Strategy) error {
	strategyM := fromStrategyDomain(strategy)

	if err := repo.db.WithContext(ctx).Create(strategyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError("strategy", "missing required strategy information")
		}

		return domainerrors.NewDatabaseExecuteError(translateError(err, "failed to create strategy"), "failed to create strategy")
	}

	strategy.ID = strategyM.ID
	strategy.CreatedAt = strategyM.CreatedAt
	strategy.UpdatedAt = strategyM.UpdatedAt

	return nil
}

// FindByID retrieves a strategy by its unique ID.
func (repo *strategyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Strategy, error) {
	var strategyM model.StrategyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&strategyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStrategyNotFound
		}

		return nil, translateError(err, "failed to find strategy by ID")
	}

	return toStrategyDomain(&strategyM), nil
}

// List returns strategies ordered by creation time, newest first.
func (repo *strategyRepository) List(ctx context.Context, limit, offset int) ([]*entity.Strategy, error) {
	var strategyModels []*model.StrategyModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&strategyModels).Error; err != nil {
		return nil, translateError(err, "failed to list strategies")
	}

	strategies := make([]*entity.Strategy, 0, len(strategyModels))
	for _, strategyM := range strategyModels {
		strategies = append(strategies, toStrategyDomain(strategyM))
	}

	return strategies, nil
}

// UpdateStatus moves a strategy from one status to another with a conditional update.
func (repo *strategyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.StrategyStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StrategyModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return translateError(result.Error, "failed to update strategy status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// toStrategyDomain converts a GORM StrategyModel to a domain Strategy entity.
func toStrategyDomain(data *model.StrategyModel) *entity.Strategy {
	if data == nil {
		return nil
	}

	return &entity.Strategy{
		ID:       data.ID,
		Name:     data.Name,
		Region:   data.Region,
		Category: data.Category,
		Bounds: orb.Bound{
			Min: orb.Point{data.MinLng, data.MinLat},
			Max: orb.Point{data.MaxLng, data.MaxLat},
		},
		Rationale: data.Rationale,
		Status:    entity.StrategyStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStrategyDomain converts a domain Strategy entity to a GORM StrategyModel.
func fromStrategyDomain(data *entity.Strategy) *model.StrategyModel {
	if data == nil {
		return nil
	}

	return &model.StrategyModel{
		ID:        data.ID,
		Name:      data.Name,
		Region:    data.Region,
		Category:  data.Category,
		MinLat:    data.Bounds.Min.Lat(),
		MinLng:    data.Bounds.Min.Lon(),
		MaxLat:    data.Bounds.Max.Lat(),
		MaxLng:    data.Bounds.Max.Lon(),
		Rationale: data.Rationale,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
