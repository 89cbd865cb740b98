// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"leadgrid/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewStrategyRepository creates a new strategy repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewStrategyRepository() repository.StrategyRepository {
	return NewStrategyRepository(f.tx)
}

// NewZoneRepository creates a new zone repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewZoneRepository() repository.ZoneRepository {
	return NewZoneRepository(f.tx)
}

// NewBusinessRepository creates a new business repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return NewBusinessRepository(f.tx)
}

// NewDraftCampaignRepository creates a new draft campaign repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDraftCampaignRepository() repository.DraftCampaignRepository {
	return NewDraftCampaignRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Fx or the recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return translateError(err, "failed to commit transaction")
	}

	return nil
}
