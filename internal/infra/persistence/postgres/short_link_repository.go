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

// shortLinkRepository implements the repository.ShortLinkRepository interface.
type shortLinkRepository struct {
	db *gorm.DB
}

// NewShortLinkRepository is the constructor for shortLinkRepository.
func NewShortLinkRepository(db *gorm.DB) repository.ShortLinkRepository {
	return &shortLinkRepository{db: db}
}

// InsertIfAbsent inserts the link unless the partial unique index on
// (destination, link_type) WHERE active already holds a row.
func (repo *shortLinkRepository) InsertIfAbsent(ctx context.Context, link *entity.ShortLink) (bool, error) {
	linkM := fromShortLinkDomain(link)
	linkM.Active = true

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "destination"}, {Name: "link_type"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Eq{Column: clause.Column{Name: "active"}, Value: true}}},
			DoNothing:   true,
		}).
		Create(linkM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, repository.ErrTokenCollision
		}

		return false, translateError(result.Error, "failed to insert short link")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	link.ID = linkM.ID
	link.Active = true
	link.CreatedAt = linkM.CreatedAt

	return true, nil
}

// FindActive returns the active link for a destination and link type from the primary.
func (repo *shortLinkRepository) FindActive(ctx context.Context, destination, linkType string) (*entity.ShortLink, error) {
	var linkM model.ShortLinkModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("destination = ? AND link_type = ? AND active = ?", destination, linkType, true).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShortLinkNotFound
		}

		return nil, translateError(err, "failed to find active short link")
	}

	return toShortLinkDomain(&linkM), nil
}

// FindByToken returns the link with the given token, active or not.
func (repo *shortLinkRepository) FindByToken(ctx context.Context, token string) (*entity.ShortLink, error) {
	return repo.findOne(ctx, "token = ?", token)
}

// FindByID returns the link with the given ID.
func (repo *shortLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShortLink, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *shortLinkRepository) findOne(ctx context.Context, query string, arg any) (*entity.ShortLink, error) {
	var linkM model.ShortLinkModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShortLinkNotFound
		}

		return nil, translateError(err, "failed to find short link")
	}

	return toShortLinkDomain(&linkM), nil
}

// IncrementClicks bumps the click counter of an active link.
func (repo *shortLinkRepository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShortLinkModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("clicks", gorm.Expr("clicks + 1"))

	if result.Error != nil {
		return translateError(result.Error, "failed to increment short link clicks")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShortLinkNotFound
	}

	return nil
}

// Deactivate soft-deletes an active link.
func (repo *shortLinkRepository) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShortLinkModel{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{
			"active":         false,
			"deactivated_at": at,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to deactivate short link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShortLinkNotFound
	}

	return nil
}

// toShortLinkDomain converts a GORM ShortLinkModel to a domain ShortLink entity.
func toShortLinkDomain(data *model.ShortLinkModel) *entity.ShortLink {
	return &entity.ShortLink{
		ID:            data.ID,
		Token:         data.Token,
		Destination:   data.Destination,
		LinkType:      data.LinkType,
		Active:        data.Active,
		Clicks:        data.Clicks,
		CreatedAt:     data.CreatedAt,
		DeactivatedAt: data.DeactivatedAt,
	}
}

// fromShortLinkDomain converts a domain ShortLink entity to a GORM ShortLinkModel.
func fromShortLinkDomain(data *entity.ShortLink) *model.ShortLinkModel {
	return &model.ShortLinkModel{
		ID:            data.ID,
		Token:         data.Token,
		Destination:   data.Destination,
		LinkType:      data.LinkType,
		Active:        data.Active,
		Clicks:        data.Clicks,
		CreatedAt:     data.CreatedAt,
		DeactivatedAt: data.DeactivatedAt,
	}
}
