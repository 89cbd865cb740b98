package repository

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for site and customer persistence.
var (
	// ErrSiteNotFound is returned when a site is not found.
	ErrSiteNotFound = errors.New("site not found")
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// SiteRepository defines the interface for site persistence.
type SiteRepository interface {
	// FindByID retrieves a site by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error)

	// TransferOwnership moves a preview site to owned by the transaction in a single
	// conditional update. Returns ErrStatusConflict when the site is no longer in preview.
	TransferOwnership(ctx context.Context, siteID uuid.UUID, txID string, ownedAt time.Time) error

	// AssignOwner records the customer of the transaction that owns the site.
	// Returns ErrStatusConflict when another transaction owns it.
	AssignOwner(ctx context.Context, siteID uuid.UUID, txID string, customerID uuid.UUID) error
}

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	// FindOrCreate inserts the customer unless one with the same email exists and
	// returns the stored row. created is false when the row already existed.
	FindOrCreate(ctx context.Context, customer *entity.Customer) (stored *entity.Customer, created bool, err error)

	// FindByID retrieves a customer by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// SetPasswordHash replaces the password hash of a customer.
	SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
