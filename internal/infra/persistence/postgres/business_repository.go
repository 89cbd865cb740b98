package postgres

import (
	"context"
	"fmt"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	"leadgrid/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns refreshed on every upsert. created_at and id keep the first writer's values.
//
//nolint:gochecknoglobals
var businessUpsertColumns = []string{
	"zone_id", "name", "address", "category", "phone", "email", "website",
	"rating", "review_count", "latitude", "longitude",
	"qualification_score", "qualified", "website_status", "raw_payload", "updated_at",
}

// Text columns whose "is" predicate tests for a non-empty value.
//
//nolint:gochecknoglobals
var businessPresenceColumns = map[string]bool{
	"website": true,
	"email":   true,
	"phone":   true,
}

const businessStrategyColumn = "strategy_id"

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByExternalIDs returns the existing businesses keyed by external ID.
func (repo *businessRepository) FindByExternalIDs(ctx context.Context, externalIDs []string) (map[string]*entity.Business, error) {
	result := make(map[string]*entity.Business, len(externalIDs))
	if len(externalIDs) == 0 {
		return result, nil
	}

	var businessModels []*model.BusinessModel
	if err := repo.db.WithContext(ctx).
		Where("external_id IN ?", externalIDs).
		Find(&businessModels).Error; err != nil {
		return nil, translateError(err, "failed to find businesses by external IDs")
	}

	for _, businessM := range businessModels {
		result[businessM.ExternalID] = toBusinessDomain(businessM)
	}

	return result, nil
}

// UpsertBatch inserts or updates businesses by external ID. The last writer wins.
func (repo *businessRepository) UpsertBatch(ctx context.Context, businesses []*entity.Business) error {
	if len(businesses) == 0 {
		return nil
	}

	businessModels := make([]*model.BusinessModel, 0, len(businesses))
	for _, business := range businesses {
		businessModels = append(businessModels, fromBusinessDomain(business))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns(businessUpsertColumns),
			},
			clause.Returning{},
		).
		Create(&businessModels).Error; err != nil {
		return translateError(err, "failed to upsert businesses")
	}

	for i, businessM := range businessModels {
		businesses[i].ID = businessM.ID
		businesses[i].CreatedAt = businessM.CreatedAt
		businesses[i].UpdatedAt = businessM.UpdatedAt
	}

	return nil
}

// Search returns one page of businesses matching the query and the total match count.
func (repo *businessRepository) Search(ctx context.Context, query repository.BusinessQuery) ([]*entity.Business, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.BusinessModel{})

	for _, predicate := range query.Predicates {
		condition, args, err := businessCondition(predicate)
		if err != nil {
			return nil, 0, err
		}
		tx = tx.Where(condition, args...)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "failed to count businesses")
	}

	var businessModels []*model.BusinessModel
	if err := tx.
		Order("qualification_score DESC, id ASC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&businessModels).Error; err != nil {
		return nil, 0, translateError(err, "failed to search businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, total, nil
}

// businessCondition renders one whitelisted predicate into a SQL condition.
func businessCondition(predicate repository.BusinessPredicate) (string, []any, error) {
	column := predicate.Column

	var condition string
	switch predicate.Op {
	case entity.FilterOpEq:
		condition = column + " = ?"
	case entity.FilterOpIn:
		condition = column + " IN ?"
	case entity.FilterOpGt:
		condition = column + " > ?"
	case entity.FilterOpGte:
		condition = column + " >= ?"
	case entity.FilterOpLt:
		condition = column + " < ?"
	case entity.FilterOpLte:
		condition = column + " <= ?"
	case entity.FilterOpBetween:
		condition = column + " BETWEEN ? AND ?"
	case entity.FilterOpIs:
		if businessPresenceColumns[column] {
			condition = fmt.Sprintf("(COALESCE(%s, '') <> '') = ?", column)
		} else {
			condition = column + " = ?"
		}
	default:
		return "", nil, errors.Errorf("unsupported filter operator %q", predicate.Op)
	}

	args := predicate.Values
	if predicate.Op == entity.FilterOpIn {
		args = []any{predicate.Values}
	}

	if predicate.Column == businessStrategyColumn {
		// strategy_id lives on zones; match the business zone against the strategy's zones.
		subquery := "SELECT id FROM zones WHERE " + condition
		return "zone_id IN (" + subquery + ")", args, nil
	}

	return condition, args, nil
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:                 data.ID,
		ZoneID:             data.ZoneID,
		ExternalID:         data.ExternalID,
		Name:               data.Name,
		Address:            data.Address,
		Category:           data.Category,
		Phone:              data.Phone,
		Email:              data.Email,
		Website:            data.Website,
		Rating:             data.Rating,
		ReviewCount:        data.ReviewCount,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		QualificationScore: data.QualificationScore,
		Qualified:          data.Qualified,
		WebsiteStatus:      entity.WebsiteStatus(data.WebsiteStatus),
		RawPayload:         data.RawPayload,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	websiteStatus := data.WebsiteStatus
	if websiteStatus == "" {
		websiteStatus = entity.WebsiteStatusUnknown
	}

	return &model.BusinessModel{
		ID:                 data.ID,
		ZoneID:             data.ZoneID,
		ExternalID:         data.ExternalID,
		Name:               data.Name,
		Address:            data.Address,
		Category:           data.Category,
		Phone:              data.Phone,
		Email:              data.Email,
		Website:            data.Website,
		Rating:             data.Rating,
		ReviewCount:        data.ReviewCount,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		QualificationScore: data.QualificationScore,
		Qualified:          data.Qualified,
		WebsiteStatus:      string(websiteStatus),
		RawPayload:         data.RawPayload,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
