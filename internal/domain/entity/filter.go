package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FilterOp is a comparison operator of a filter clause.
type FilterOp string

const (
	FilterOpEq      FilterOp = "eq"
	FilterOpIn      FilterOp = "in"
	FilterOpGt      FilterOp = "gt"
	FilterOpGte     FilterOp = "gte"
	FilterOpLt      FilterOp = "lt"
	FilterOpLte     FilterOp = "lte"
	FilterOpBetween FilterOp = "between"
	FilterOpIs      FilterOp = "is"
)

// FilterClause is a single field condition. Value is kept raw until the
// filter is compiled against the field whitelist.
type FilterClause struct {
	Op    FilterOp        `json:"op"`
	Value json.RawMessage `json:"value"`
}

// FilterSpec maps field names to clauses.
type FilterSpec map[string]FilterClause

// FilterPreset is a named, reusable FilterSpec.
type FilterPreset struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	IsPublic  bool       `json:"is_public"`
	Filter    FilterSpec `json:"filter"`
	CreatedAt time.Time  `json:"created_at"`
}

// VisibleTo reports whether the caller may apply the preset.
func (p *FilterPreset) VisibleTo(callerID uuid.UUID) bool {
	return p.IsPublic || p.OwnerID == callerID
}
