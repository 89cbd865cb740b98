package postgres

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	"leadgrid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Claim inserts a pending subscription unless the site already has one, then selects the stored row.
func (repo *subscriptionRepository) Claim(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, bool, error) {
	subscriptionM := fromSubscriptionDomain(sub)
	if subscriptionM.Status == "" {
		subscriptionM.Status = string(entity.SubscriptionStatusPending)
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_id"}},
			DoNothing: true,
		}).
		Create(subscriptionM)
	if result.Error != nil {
		return nil, false, translateError(result.Error, "failed to claim subscription")
	}

	stored, err := repo.findBySite(ctx, sub.SiteID)
	if err != nil {
		return nil, false, err
	}

	return stored, result.RowsAffected == 1, nil
}

// FindBySite retrieves the subscription of a site.
func (repo *subscriptionRepository) FindBySite(ctx context.Context, siteID uuid.UUID) (*entity.Subscription, error) {
	return repo.findBySite(ctx, siteID)
}

func (repo *subscriptionRepository) findBySite(ctx context.Context, siteID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("site_id = ?", siteID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, translateError(err, "failed to find subscription by site")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// MarkActive records the provider subscription on a pending or failed row.
func (repo *subscriptionRepository) MarkActive(ctx context.Context, id uuid.UUID, providerSubscriptionID string, nextChargeAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ? AND status IN ?", id, []string{
			string(entity.SubscriptionStatusPending),
			string(entity.SubscriptionStatusFailed),
		}).
		Updates(map[string]any{
			"status":                   string(entity.SubscriptionStatusActive),
			"provider_subscription_id": providerSubscriptionID,
			"next_charge_at":           nextChargeAt,
			"failure_reason":           "",
			"updated_at":               time.Now().UTC(),
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to activate subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// MarkFailed records a provider rejection on a pending row.
func (repo *subscriptionRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ? AND status = ?", id, string(entity.SubscriptionStatusPending)).
		Updates(map[string]any{
			"status":         string(entity.SubscriptionStatusFailed),
			"failure_reason": reason,
			"updated_at":     time.Now().UTC(),
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to mark subscription failed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:                     data.ID,
		SiteID:                 data.SiteID,
		CustomerID:             data.CustomerID,
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		Status:                 entity.SubscriptionStatus(data.Status),
		NextChargeAt:           data.NextChargeAt,
		FailureReason:          data.FailureReason,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:                     data.ID,
		SiteID:                 data.SiteID,
		CustomerID:             data.CustomerID,
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		Status:                 string(data.Status),
		NextChargeAt:           data.NextChargeAt,
		FailureReason:          data.FailureReason,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
