package postgres

import (
	"context"
	"encoding/json"
	"time"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	"leadgrid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// zoneRepository implements the repository.ZoneRepository interface.
// Every status change is a single conditional UPDATE on the current status.
type zoneRepository struct {
	db *gorm.DB
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{db: db}
}

// CreateBatch persists the zones of a strategy.
func (repo *zoneRepository) CreateBatch(ctx context.Context, zones []*entity.Zone) error {
	if len(zones) == 0 {
		return nil
	}

	zoneModels := make([]*model.ZoneModel, 0, len(zones))
	for _, zone := range zones {
		zoneM, err := fromZoneDomain(zone)
		if err != nil {
			return err
		}
		zoneModels = append(zoneModels, zoneM)
	}

	if err := repo.db.WithContext(ctx).Create(&zoneModels).Error; err != nil {
		return translateError(err, "failed to create zones")
	}

	for i, zoneM := range zoneModels {
		zones[i].ID = zoneM.ID
		zones[i].CreatedAt = zoneM.CreatedAt
		zones[i].UpdatedAt = zoneM.UpdatedAt
	}

	return nil
}

// FindByID retrieves a zone by its ID from the primary, so a status written a moment ago is visible.
func (repo *zoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error) {
	var zoneM model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, translateError(err, "failed to find zone by ID")
	}

	return toZoneDomain(&zoneM)
}

// ListByStrategy returns all zones of a strategy ordered by priority.
func (repo *zoneRepository) ListByStrategy(ctx context.Context, strategyID uuid.UUID) ([]*entity.Zone, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("strategy_id = ?", strategyID))
}

// ListByStrategyAndStatus returns zones of a strategy in the given status ordered by priority.
func (repo *zoneRepository) ListByStrategyAndStatus(ctx context.Context, strategyID uuid.UUID, status entity.ZoneStatus) ([]*entity.Zone, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("strategy_id = ? AND status = ?", strategyID, string(status)))
}

func (repo *zoneRepository) list(_ context.Context, tx *gorm.DB) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel

	if err := tx.Order("priority DESC, created_at ASC").Find(&zoneModels).Error; err != nil {
		return nil, translateError(err, "failed to list zones")
	}

	return toZoneDomains(zoneModels)
}

// ClaimForScrape moves a pending zone to in_progress and returns the bumped attempt
// counter, which later transitions must present to prove they still own the claim.
func (repo *zoneRepository) ClaimForScrape(ctx context.Context, id uuid.UUID, startedAt time.Time) (int, error) {
	var zoneM model.ZoneModel

	result := repo.db.WithContext(ctx).
		Model(&zoneM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "attempts"}}}).
		Where("id = ? AND status = ?", id, string(entity.ZoneStatusPending)).
		Updates(map[string]any{
			"status":            string(entity.ZoneStatusInProgress),
			"scrape_started_at": startedAt,
			"attempts":          gorm.Expr("attempts + 1"),
			"last_error":        "",
			"updated_at":        startedAt,
		})
	if result.Error != nil {
		return 0, translateError(result.Error, "failed to claim zone")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrStatusConflict
	}

	return zoneM.Attempts, nil
}

// MarkCompleted moves a zone still held by the given claim to completed, overwriting its summary.
func (repo *zoneRepository) MarkCompleted(ctx context.Context, id uuid.UUID, attempt int, summary *entity.ZoneSummary, scrapedAt time.Time) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "failed to encode zone summary")
	}

	return repo.apply(ctx, repo.claimed(ctx, id, attempt), map[string]any{
		"status":            string(entity.ZoneStatusCompleted),
		"summary":           summaryJSON,
		"last_scraped_at":   scrapedAt,
		"scrape_started_at": nil,
		"last_error":        "",
		"updated_at":        scrapedAt,
	})
}

// MarkFailed moves a zone still held by the given claim to failed with a reason.
func (repo *zoneRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempt int, reason string) error {
	return repo.apply(ctx, repo.claimed(ctx, id, attempt), map[string]any{
		"status":            string(entity.ZoneStatusFailed),
		"last_error":        reason,
		"scrape_started_at": nil,
		"updated_at":        time.Now().UTC(),
	})
}

// ResetFailed moves a failed zone back to pending.
func (repo *zoneRepository) ResetFailed(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, entity.ZoneStatusFailed, map[string]any{
		"status":     string(entity.ZoneStatusPending),
		"updated_at": time.Now().UTC(),
	})
}

// ReleaseStale moves in_progress zones started before the cutoff back to pending in one statement.
func (repo *zoneRepository) ReleaseStale(ctx context.Context, startedBefore time.Time) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel

	result := repo.db.WithContext(ctx).
		Model(&zoneModels).
		Clauses(clause.Returning{}).
		Where("status = ? AND scrape_started_at < ?", string(entity.ZoneStatusInProgress), startedBefore).
		Updates(map[string]any{
			"status":            string(entity.ZoneStatusPending),
			"scrape_started_at": nil,
			"last_error":        "released by stale sweep",
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to release stale zones")
	}

	return toZoneDomains(zoneModels)
}

func (repo *zoneRepository) transition(ctx context.Context, id uuid.UUID, from entity.ZoneStatus, updates map[string]any) error {
	return repo.apply(ctx, repo.db.WithContext(ctx).
		Model(&model.ZoneModel{}).
		Where("id = ? AND status = ?", id, string(from)), updates)
}

// claimed scopes an update to the in_progress row of one specific claim, so a scrape
// released by the stale sweep cannot finish a zone another worker has re-claimed.
func (repo *zoneRepository) claimed(ctx context.Context, id uuid.UUID, attempt int) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ZoneModel{}).
		Where("id = ? AND status = ? AND attempts = ?", id, string(entity.ZoneStatusInProgress), attempt)
}

func (repo *zoneRepository) apply(_ context.Context, scope *gorm.DB, updates map[string]any) error {
	result := scope.Updates(updates)

	if result.Error != nil {
		return translateError(result.Error, "failed to update zone status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

func toZoneDomains(zoneModels []*model.ZoneModel) ([]*entity.Zone, error) {
	zones := make([]*entity.Zone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zone, err := toZoneDomain(zoneM)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// toZoneDomain converts a GORM ZoneModel to a domain Zone entity.
func toZoneDomain(data *model.ZoneModel) (*entity.Zone, error) {
	if data == nil {
		return nil, nil
	}

	zone := &entity.Zone{
		ID:         data.ID,
		StrategyID: data.StrategyID,
		Name:       data.Name,
		Category:   data.Category,
		Bounds: orb.Bound{
			Min: orb.Point{data.MinLng, data.MinLat},
			Max: orb.Point{data.MaxLng, data.MaxLat},
		},
		Priority:        data.Priority,
		Status:          entity.ZoneStatus(data.Status),
		Attempts:        data.Attempts,
		LastError:       data.LastError,
		ScrapeStartedAt: data.ScrapeStartedAt,
		LastScrapedAt:   data.LastScrapedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.Summary) > 0 {
		var summary entity.ZoneSummary
		if err := json.Unmarshal(data.Summary, &summary); err != nil {
			return nil, errors.Wrapf(err, "failed to decode summary of zone %s", data.ID)
		}
		zone.Summary = &summary
	}

	return zone, nil
}

// fromZoneDomain converts a domain Zone entity to a GORM ZoneModel.
func fromZoneDomain(data *entity.Zone) (*model.ZoneModel, error) {
	zoneM := &model.ZoneModel{
		ID:              data.ID,
		StrategyID:      data.StrategyID,
		Name:            data.Name,
		Category:        data.Category,
		MinLat:          data.Bounds.Min.Lat(),
		MinLng:          data.Bounds.Min.Lon(),
		MaxLat:          data.Bounds.Max.Lat(),
		MaxLng:          data.Bounds.Max.Lon(),
		Priority:        data.Priority,
		Status:          string(data.Status),
		Attempts:        data.Attempts,
		LastError:       data.LastError,
		ScrapeStartedAt: data.ScrapeStartedAt,
		LastScrapedAt:   data.LastScrapedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Summary != nil {
		summaryJSON, err := json.Marshal(data.Summary)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode zone summary")
		}
		zoneM.Summary = summaryJSON
	}

	return zoneM, nil
}
