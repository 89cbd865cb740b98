package postgres

import (
	"context"
	"strings"
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

// siteRepository implements the repository.SiteRepository interface.
type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository is the constructor for siteRepository.
func NewSiteRepository(db *gorm.DB) repository.SiteRepository {
	return &siteRepository{db: db}
}

// FindByID retrieves a site by its ID from the primary.
func (repo *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	var siteM model.SiteModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&siteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSiteNotFound
		}

		return nil, translateError(err, "failed to find site by ID")
	}

	return toSiteDomain(&siteM), nil
}

// TransferOwnership moves a preview site to owned by the transaction in a single conditional update.
// The owning customer is recorded afterwards by AssignOwner.
func (repo *siteRepository) TransferOwnership(ctx context.Context, siteID uuid.UUID, txID string, ownedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SiteModel{}).
		Where("id = ? AND status = ?", siteID, string(entity.SiteStatusPreview)).
		Updates(map[string]any{
			"status":          string(entity.SiteStatusOwned),
			"ownership_tx_id": txID,
			"owned_at":        ownedAt,
			"updated_at":      ownedAt,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to transfer site ownership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// AssignOwner records the customer of the owning transaction. Re-assigning the same customer is a no-op update.
func (repo *siteRepository) AssignOwner(ctx context.Context, siteID uuid.UUID, txID string, customerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SiteModel{}).
		Where("id = ? AND status = ? AND ownership_tx_id = ?", siteID, string(entity.SiteStatusOwned), txID).
		Updates(map[string]any{
			"owner_customer_id": customerID,
			"updated_at":        time.Now().UTC(),
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to assign site owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindOrCreate inserts the customer unless the email exists, then selects the stored row.
func (repo *customerRepository) FindOrCreate(ctx context.Context, customer *entity.Customer) (*entity.Customer, bool, error) {
	customerM := fromCustomerDomain(customer)
	customerM.Email = strings.ToLower(strings.TrimSpace(customerM.Email))

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(customerM)
	if result.Error != nil {
		return nil, false, translateError(result.Error, "failed to insert customer")
	}

	var stored model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", customerM.Email).
		First(&stored).Error; err != nil {
		return nil, false, translateError(err, "failed to load customer by email")
	}

	return toCustomerDomain(&stored), result.RowsAffected == 1, nil
}

// FindByID retrieves a customer by its ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, translateError(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// SetPasswordHash replaces the password hash of a customer.
func (repo *customerRepository) SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return translateError(result.Error, "failed to set customer password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// toSiteDomain converts a GORM SiteModel to a domain Site entity.
func toSiteDomain(data *model.SiteModel) *entity.Site {
	site := &entity.Site{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Slug:            data.Slug,
		Status:          entity.SiteStatus(data.Status),
		OwnerCustomerID: data.OwnerCustomerID,
		OwnedAt:         data.OwnedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.OwnershipTxID != nil {
		site.OwnershipTxID = *data.OwnershipTxID
	}

	return site
}

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:           data.ID,
		Email:        data.Email,
		DisplayName:  data.DisplayName,
		PasswordHash: data.PasswordHash,
		CreatedByTx:  data.CreatedByTx,
		CreatedAt:    data.CreatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:           data.ID,
		Email:        data.Email,
		DisplayName:  data.DisplayName,
		PasswordHash: data.PasswordHash,
		CreatedByTx:  data.CreatedByTx,
		CreatedAt:    data.CreatedAt,
	}
}
