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
	"gorm.io/plugin/dbresolver"
)

// activationRepository implements the repository.ActivationRepository interface.
// The unique transaction_id plus the locked_until lease give per-transaction
// exclusivity across processes.
type activationRepository struct {
	db *gorm.DB
}

// NewActivationRepository is the constructor for activationRepository.
func NewActivationRepository(db *gorm.DB) repository.ActivationRepository {
	return &activationRepository{db: db}
}

// Create records a new activation holding the processing lease.
func (repo *activationRepository) Create(ctx context.Context, activation *entity.Activation) error {
	activationM := fromActivationDomain(activation)

	if err := repo.db.WithContext(ctx).Create(activationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActivation
		}

		return translateError(err, "failed to create activation")
	}

	activation.ID = activationM.ID
	activation.CreatedAt = activationM.CreatedAt
	activation.UpdatedAt = activationM.UpdatedAt

	return nil
}

// FindByTransactionID retrieves an activation by transaction id from the primary.
func (repo *activationRepository) FindByTransactionID(ctx context.Context, txID string) (*entity.Activation, error) {
	var activationM model.ActivationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("transaction_id = ?", txID).
		First(&activationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivationNotFound
		}

		return nil, translateError(err, "failed to find activation by transaction ID")
	}

	return toActivationDomain(&activationM), nil
}

// AcquireLease takes the lease of a processing activation whose previous lease expired.
func (repo *activationRepository) AcquireLease(ctx context.Context, id uuid.UUID, now, lockedUntil time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivationModel{}).
		Where("id = ? AND status = ? AND (locked_until IS NULL OR locked_until < ?)",
			id, string(entity.ActivationStatusProcessing), now).
		Updates(map[string]any{
			"locked_until": lockedUntil,
			"attempts":     gorm.Expr("attempts + 1"),
			"updated_at":   now,
		})

	if result.Error != nil {
		return false, translateError(result.Error, "failed to acquire activation lease")
	}

	return result.RowsAffected == 1, nil
}

// SaveProgress persists the pipeline fields. A terminal status releases the lease.
func (repo *activationRepository) SaveProgress(ctx context.Context, activation *entity.Activation) error {
	updates := map[string]any{
		"status":           string(activation.Status),
		"failure_reason":   activation.FailureReason,
		"customer_id":      activation.CustomerID,
		"subscription_id":  activation.SubscriptionID,
		"short_link_token": activation.ShortLinkToken,
		"completed_at":     activation.CompletedAt,
		"updated_at":       time.Now().UTC(),
	}
	if activation.Status.IsTerminal() {
		updates["locked_until"] = nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ActivationModel{}).
		Where("id = ?", activation.ID).
		Updates(updates)

	if result.Error != nil {
		return translateError(result.Error, "failed to save activation progress")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivationNotFound
	}

	return nil
}

// MarkNotified stamps notified_at once.
func (repo *activationRepository) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivationModel{}).
		Where("id = ? AND notified_at IS NULL", id).
		Update("notified_at", at)

	if result.Error != nil {
		return false, translateError(result.Error, "failed to mark activation notified")
	}

	return result.RowsAffected == 1, nil
}

// ListByStatus returns activations in the given statuses, newest first.
func (repo *activationRepository) ListByStatus(ctx context.Context, statuses []entity.ActivationStatus, limit int) ([]*entity.Activation, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	var activationModels []*model.ActivationModel
	if err := repo.db.WithContext(ctx).
		Where("status IN ?", values).
		Order("created_at DESC").
		Limit(limit).
		Find(&activationModels).Error; err != nil {
		return nil, translateError(err, "failed to list activations")
	}

	activations := make([]*entity.Activation, 0, len(activationModels))
	for _, activationM := range activationModels {
		activations = append(activations, toActivationDomain(activationM))
	}

	return activations, nil
}

// toActivationDomain converts a GORM ActivationModel to a domain Activation entity.
func toActivationDomain(data *model.ActivationModel) *entity.Activation {
	return &entity.Activation{
		ID:                 data.ID,
		TransactionID:      data.TransactionID,
		SiteID:             data.SiteID,
		CustomerEmail:      data.CustomerEmail,
		CustomerName:       data.CustomerName,
		PaymentMethodToken: data.PaymentMethodToken,
		Amount:             data.Amount,
		Currency:           data.Currency,
		Status:             entity.ActivationStatus(data.Status),
		FailureReason:      data.FailureReason,
		CustomerID:         data.CustomerID,
		SubscriptionID:     data.SubscriptionID,
		ShortLinkToken:     data.ShortLinkToken,
		Attempts:           data.Attempts,
		LockedUntil:        data.LockedUntil,
		NotifiedAt:         data.NotifiedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		CompletedAt:        data.CompletedAt,
	}
}

// fromActivationDomain converts a domain Activation entity to a GORM ActivationModel.
func fromActivationDomain(data *entity.Activation) *model.ActivationModel {
	return &model.ActivationModel{
		ID:                 data.ID,
		TransactionID:      data.TransactionID,
		SiteID:             data.SiteID,
		CustomerEmail:      data.CustomerEmail,
		CustomerName:       data.CustomerName,
		PaymentMethodToken: data.PaymentMethodToken,
		Amount:             data.Amount,
		Currency:           data.Currency,
		Status:             string(data.Status),
		FailureReason:      data.FailureReason,
		CustomerID:         data.CustomerID,
		SubscriptionID:     data.SubscriptionID,
		ShortLinkToken:     data.ShortLinkToken,
		Attempts:           data.Attempts,
		LockedUntil:        data.LockedUntil,
		NotifiedAt:         data.NotifiedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		CompletedAt:        data.CompletedAt,
	}
}
