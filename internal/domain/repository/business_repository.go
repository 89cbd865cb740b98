package repository

import (
	"context"

	"leadgrid/internal/domain/entity"
)

// BusinessPredicate is one compiled, whitelisted filter condition.
// Column is a storage column name, never user input.
type BusinessPredicate struct {
	Column string
	Op     entity.FilterOp
	Values []any
}

// BusinessQuery is a compiled business search.
type BusinessQuery struct {
	Predicates []BusinessPredicate
	Limit      int
	Offset     int
}

// BusinessRepository defines the interface for business persistence.
type BusinessRepository interface {
	// FindByExternalIDs returns the existing businesses keyed by external ID.
	FindByExternalIDs(ctx context.Context, externalIDs []string) (map[string]*entity.Business, error)

	// UpsertBatch inserts or updates businesses by external ID, last writer wins.
	// IDs and timestamps of the passed entities are refreshed from storage.
	UpsertBatch(ctx context.Context, businesses []*entity.Business) error

	// Search returns one page of businesses matching the query and the total match count.
	Search(ctx context.Context, query BusinessQuery) ([]*entity.Business, int64, error)
}
