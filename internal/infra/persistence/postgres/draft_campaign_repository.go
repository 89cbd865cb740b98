package postgres

import (
	"context"
	"encoding/json"
	"time"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	"leadgrid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// draftCampaignRepository implements the repository.DraftCampaignRepository interface.
type draftCampaignRepository struct {
	db *gorm.DB
}

// NewDraftCampaignRepository is the constructor for draftCampaignRepository.
func NewDraftCampaignRepository(db *gorm.DB) repository.DraftCampaignRepository {
	return &draftCampaignRepository{db: db}
}

// Create persists a new draft campaign.
func (repo *draftCampaignRepository) Create(ctx context.Context, draft *entity.DraftCampaign) error {
	draftM, err := fromDraftCampaignDomain(draft)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(draftM).Error; err != nil {
		return translateError(err, "failed to create draft campaign")
	}

	draft.ID = draftM.ID
	draft.CreatedAt = draftM.CreatedAt

	return nil
}

// FindByID retrieves a draft campaign by its ID.
func (repo *draftCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DraftCampaign, error) {
	var draftM model.DraftCampaignModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&draftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDraftNotFound
		}

		return nil, translateError(err, "failed to find draft campaign by ID")
	}

	return toDraftCampaignDomain(&draftM)
}

// ListByStrategy returns the drafts of a strategy, newest first.
func (repo *draftCampaignRepository) ListByStrategy(ctx context.Context, strategyID uuid.UUID) ([]*entity.DraftCampaign, error) {
	var draftModels []*model.DraftCampaignModel

	if err := repo.db.WithContext(ctx).
		Where("strategy_id = ?", strategyID).
		Order("created_at DESC").
		Find(&draftModels).Error; err != nil {
		return nil, translateError(err, "failed to list draft campaigns")
	}

	drafts := make([]*entity.DraftCampaign, 0, len(draftModels))
	for _, draftM := range draftModels {
		draft, err := toDraftCampaignDomain(draftM)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// Review moves a pending_review draft to the given status.
func (repo *draftCampaignRepository) Review(ctx context.Context, id uuid.UUID, status entity.DraftStatus, reviewerID uuid.UUID, reviewedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DraftCampaignModel{}).
		Where("id = ? AND status = ?", id, string(entity.DraftStatusPendingReview)).
		Updates(map[string]any{
			"status":      string(status),
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to review draft campaign")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// toDraftCampaignDomain converts a GORM DraftCampaignModel to a domain DraftCampaign entity.
func toDraftCampaignDomain(data *model.DraftCampaignModel) (*entity.DraftCampaign, error) {
	businessIDs := []uuid.UUID{}
	if len(data.BusinessIDs) > 0 {
		if err := json.Unmarshal(data.BusinessIDs, &businessIDs); err != nil {
			return nil, errors.Wrapf(err, "failed to decode business IDs of draft %s", data.ID)
		}
	}

	return &entity.DraftCampaign{
		ID:          data.ID,
		StrategyID:  data.StrategyID,
		ZoneID:      data.ZoneID,
		Status:      entity.DraftStatus(data.Status),
		BusinessIDs: businessIDs,
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
	}, nil
}

// fromDraftCampaignDomain converts a domain DraftCampaign entity to a GORM DraftCampaignModel.
func fromDraftCampaignDomain(data *entity.DraftCampaign) (*model.DraftCampaignModel, error) {
	businessIDs := data.BusinessIDs
	if businessIDs == nil {
		businessIDs = []uuid.UUID{}
	}

	encoded, err := json.Marshal(businessIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode draft business IDs")
	}

	return &model.DraftCampaignModel{
		ID:          data.ID,
		StrategyID:  data.StrategyID,
		ZoneID:      data.ZoneID,
		Status:      string(data.Status),
		BusinessIDs: encoded,
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
	}, nil
}
