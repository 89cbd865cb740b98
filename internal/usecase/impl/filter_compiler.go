package impl

import (
	"encoding/json"
	"sort"

	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"

	"github.com/google/uuid"
)

type filterValueKind int

const (
	filterText filterValueKind = iota
	filterWebsiteStatus
	filterUUID
	filterBool
	filterNumber
	filterInteger
)

const maxInValues = 100

// filterField describes one filterable business field.
type filterField struct {
	column string
	kind   filterValueKind
	ops    map[entity.FilterOp]bool
}

func opSet(ops ...entity.FilterOp) map[entity.FilterOp]bool {
	set := make(map[entity.FilterOp]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}

	return set
}

var (
	equalityOps   = opSet(entity.FilterOpEq, entity.FilterOpIn)
	presenceOps   = opSet(entity.FilterOpIs)
	comparisonOps = opSet(entity.FilterOpEq, entity.FilterOpGt, entity.FilterOpGte, entity.FilterOpLt, entity.FilterOpLte, entity.FilterOpBetween)
)

// businessFilterFields is the whitelist of filterable fields.
//
//nolint:gochecknoglobals
var businessFilterFields = map[string]filterField{
	"category":            {column: "category", kind: filterText, ops: equalityOps},
	"website_status":      {column: "website_status", kind: filterWebsiteStatus, ops: equalityOps},
	"zone_id":             {column: "zone_id", kind: filterUUID, ops: equalityOps},
	"strategy_id":         {column: "strategy_id", kind: filterUUID, ops: equalityOps},
	"qualified":           {column: "qualified", kind: filterBool, ops: presenceOps},
	"has_website":         {column: "website", kind: filterBool, ops: presenceOps},
	"has_email":           {column: "email", kind: filterBool, ops: presenceOps},
	"has_phone":           {column: "phone", kind: filterBool, ops: presenceOps},
	"qualification_score": {column: "qualification_score", kind: filterInteger, ops: comparisonOps},
	"rating":              {column: "rating", kind: filterNumber, ops: comparisonOps},
	"review_count":        {column: "review_count", kind: filterInteger, ops: comparisonOps},
}

// compileFilter validates every clause and turns the spec into storage predicates.
// Fields are checked in name order so the reported field is deterministic.
// The returned spec carries the normalized values.
func compileFilter(spec entity.FilterSpec) (entity.FilterSpec, []repository.BusinessPredicate, error) {
	fields := make([]string, 0, len(spec))
	for name := range spec {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	normalized := make(entity.FilterSpec, len(spec))
	predicates := make([]repository.BusinessPredicate, 0, len(spec))

	for _, name := range fields {
		clause := spec[name]

		field, ok := businessFilterFields[name]
		if !ok {
			return nil, nil, domainerrors.NewValidationError(name, "unknown filter field")
		}
		if !field.ops[clause.Op] {
			return nil, nil, domainerrors.NewValidationError(name, "operator "+string(clause.Op)+" is not supported")
		}

		values, err := decodeClauseValues(field, clause)
		if err != nil {
			return nil, nil, domainerrors.NewValidationError(name, err.Error())
		}

		normalizedValue, err := encodeClauseValues(clause.Op, values)
		if err != nil {
			return nil, nil, domainerrors.NewValidationError(name, "value cannot be encoded")
		}

		normalized[name] = entity.FilterClause{Op: clause.Op, Value: normalizedValue}
		predicates = append(predicates, repository.BusinessPredicate{
			Column: field.column,
			Op:     clause.Op,
			Values: values,
		})
	}

	return normalized, predicates, nil
}

// mergeFilters lays the explicit clauses over the preset clauses.
func mergeFilters(preset, explicit entity.FilterSpec) entity.FilterSpec {
	merged := make(entity.FilterSpec, len(preset)+len(explicit))
	for name, clause := range preset {
		merged[name] = clause
	}
	for name, clause := range explicit {
		merged[name] = clause
	}

	return merged
}

type clauseError string

func (e clauseError) Error() string { return string(e) }

func decodeClauseValues(field filterField, clause entity.FilterClause) ([]any, error) {
	if len(clause.Value) == 0 {
		return nil, clauseError("value is required")
	}

	switch clause.Op {
	case entity.FilterOpIn:
		var raw []json.RawMessage
		if err := json.Unmarshal(clause.Value, &raw); err != nil {
			return nil, clauseError("value must be a list")
		}
		if len(raw) == 0 {
			return nil, clauseError("list must not be empty")
		}
		if len(raw) > maxInValues {
			return nil, clauseError("list is too long")
		}

		values := make([]any, 0, len(raw))
		for _, item := range raw {
			value, err := decodeScalar(field.kind, item)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}

		return values, nil

	case entity.FilterOpBetween:
		var raw []json.RawMessage
		if err := json.Unmarshal(clause.Value, &raw); err != nil || len(raw) != 2 {
			return nil, clauseError("value must be a [low, high] pair")
		}

		low, err := decodeScalar(field.kind, raw[0])
		if err != nil {
			return nil, err
		}
		high, err := decodeScalar(field.kind, raw[1])
		if err != nil {
			return nil, err
		}
		if toFloat(low) > toFloat(high) {
			return nil, clauseError("low bound exceeds high bound")
		}

		return []any{low, high}, nil

	default:
		value, err := decodeScalar(field.kind, clause.Value)
		if err != nil {
			return nil, err
		}

		return []any{value}, nil
	}
}

func decodeScalar(kind filterValueKind, raw json.RawMessage) (any, error) {
	switch kind {
	case filterText:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || value == "" {
			return nil, clauseError("value must be a non-empty string")
		}

		return value, nil

	case filterWebsiteStatus:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || !entity.WebsiteStatus(value).IsValid() {
			return nil, clauseError("value must be one of unknown, valid, invalid, needs_review")
		}

		return value, nil

	case filterUUID:
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, clauseError("value must be a UUID string")
		}
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, clauseError("value must be a UUID string")
		}

		return id, nil

	case filterBool:
		var value bool
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, clauseError("value must be a boolean")
		}

		return value, nil

	case filterInteger:
		var value float64
		if err := json.Unmarshal(raw, &value); err != nil || value != float64(int64(value)) {
			return nil, clauseError("value must be an integer")
		}

		return int64(value), nil

	case filterNumber:
		var value float64
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, clauseError("value must be a number")
		}

		return value, nil
	}

	return nil, clauseError("unsupported value")
}

func encodeClauseValues(op entity.FilterOp, values []any) (json.RawMessage, error) {
	if op == entity.FilterOpIn || op == entity.FilterOpBetween {
		return json.Marshal(values)
	}

	return json.Marshal(values[0])
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}

	return 0
}
