package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"leadgrid/config"
	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"
	"leadgrid/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxPresetNameLength = 255

// businessFilterService implements the BusinessFilterUsecase interface.
type businessFilterService struct {
	businessRepo repository.BusinessRepository
	presetRepo   repository.FilterPresetRepository
	exporter     service.BusinessExporter
	filterCfg    config.FilterConfig
	logger       *slog.Logger
	now          func() time.Time
}

// BusinessFilterServiceParams holds dependencies for BusinessFilterService, injected by Fx.
type BusinessFilterServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	PresetRepo   repository.FilterPresetRepository
	Exporter     service.BusinessExporter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessFilterService is the constructor for businessFilterService.
func NewBusinessFilterService(params BusinessFilterServiceParams) usecase.BusinessFilterUsecase {
	filterCfg := config.FilterConfig{DefaultPageSize: 20, MaxPageSize: 100, ExportLimit: 5000}
	if params.Config != nil && params.Config.Filter != nil {
		if params.Config.Filter.DefaultPageSize > 0 {
			filterCfg.DefaultPageSize = params.Config.Filter.DefaultPageSize
		}
		if params.Config.Filter.MaxPageSize > 0 {
			filterCfg.MaxPageSize = params.Config.Filter.MaxPageSize
		}
		if params.Config.Filter.ExportLimit > 0 {
			filterCfg.ExportLimit = params.Config.Filter.ExportLimit
		}
	}

	return &businessFilterService{
		businessRepo: params.BusinessRepo,
		presetRepo:   params.PresetRepo,
		exporter:     params.Exporter,
		filterCfg:    filterCfg,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (srv *businessFilterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns one page of businesses matching the merged preset and explicit filter.
func (srv *businessFilterService) Search(ctx context.Context, callerID uuid.UUID, input *usecase.BusinessSearchInput) (*usecase.BusinessSearchResult, error) {
	applied, predicates, err := srv.resolveFilter(ctx, callerID, input)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}

	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = srv.filterCfg.DefaultPageSize
	}
	if pageSize > srv.filterCfg.MaxPageSize {
		pageSize = srv.filterCfg.MaxPageSize
	}

	businesses, total, err := srv.businessRepo.Search(ctx, repository.BusinessQuery{
		Predicates: predicates,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return &usecase.BusinessSearchResult{
		Businesses:    businesses,
		AppliedFilter: applied,
		Page:          page,
		PageSize:      pageSize,
		Total:         total,
	}, nil
}

// Export renders every business matching the filter, up to the export limit.
func (srv *businessFilterService) Export(ctx context.Context, callerID uuid.UUID, input *usecase.BusinessSearchInput) (*usecase.ExportFile, error) {
	_, predicates, err := srv.resolveFilter(ctx, callerID, input)
	if err != nil {
		return nil, err
	}

	businesses, total, err := srv.businessRepo.Search(ctx, repository.BusinessQuery{
		Predicates: predicates,
		Limit:      srv.filterCfg.ExportLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses for export")
	}

	if total > int64(len(businesses)) {
		srv.log(ctx).Warn("Business export truncated", slog.Int64("total", total), slog.Int("limit", srv.filterCfg.ExportLimit))
	}

	content, err := srv.exporter.Export(businesses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render business export")
	}

	srv.log(ctx).Info("Business export rendered",
		slog.Int("rows", len(businesses)),
		slog.String("size", util.FormatBytes(int64(len(content)))))

	return &usecase.ExportFile{
		Filename:    "businesses-" + srv.now().Format("20060102-150405") + srv.exporter.FileExtension(),
		ContentType: srv.exporter.ContentType(),
		Content:     content,
		Rows:        len(businesses),
	}, nil
}

// resolveFilter merges the preset under the explicit clauses and compiles the result.
func (srv *businessFilterService) resolveFilter(ctx context.Context, callerID uuid.UUID, input *usecase.BusinessSearchInput) (entity.FilterSpec, []repository.BusinessPredicate, error) {
	var presetFilter entity.FilterSpec

	if input.PresetID != nil {
		preset, err := srv.findPreset(ctx, *input.PresetID)
		if err != nil {
			return nil, nil, err
		}
		if !preset.VisibleTo(callerID) {
			return nil, nil, domainerrors.ErrFilterPresetForbidden
		}
		presetFilter = preset.Filter
	}

	return compileFilter(mergeFilters(presetFilter, input.Filter))
}

// CreatePreset validates and stores a filter preset owned by the caller.
func (srv *businessFilterService) CreatePreset(ctx context.Context, ownerID uuid.UUID, input *usecase.CreatePresetInput) (*entity.FilterPreset, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewValidationError("name", "is required")
	}
	if len(name) > maxPresetNameLength {
		return nil, domainerrors.NewValidationError("name", "is too long")
	}

	normalized, _, err := compileFilter(input.Filter)
	if err != nil {
		return nil, err
	}

	preset := &entity.FilterPreset{
		ID:       uuid.New(),
		Name:     name,
		OwnerID:  ownerID,
		IsPublic: input.IsPublic,
		Filter:   normalized,
	}

	if err := srv.presetRepo.Create(ctx, preset); err != nil {
		return nil, errors.Wrap(err, "failed to create filter preset")
	}

	srv.log(ctx).Info("Filter preset created", slog.String("presetID", preset.ID.String()), slog.Bool("public", preset.IsPublic))

	return preset, nil
}

// ListPresets returns the presets owned by the caller or marked public.
func (srv *businessFilterService) ListPresets(ctx context.Context, callerID uuid.UUID) ([]*entity.FilterPreset, error) {
	presets, err := srv.presetRepo.ListVisible(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list filter presets")
	}

	return presets, nil
}

// DeletePreset removes a preset owned by the caller.
func (srv *businessFilterService) DeletePreset(ctx context.Context, callerID, presetID uuid.UUID) error {
	preset, err := srv.findPreset(ctx, presetID)
	if err != nil {
		return err
	}

	if preset.OwnerID != callerID {
		return domainerrors.ErrFilterPresetForbidden
	}

	if err := srv.presetRepo.Delete(ctx, presetID, callerID); err != nil {
		if errors.Is(err, repository.ErrFilterPresetNotFound) {
			return domainerrors.ErrFilterPresetNotFound
		}

		return errors.Wrap(err, "failed to delete filter preset")
	}

	return nil
}

func (srv *businessFilterService) findPreset(ctx context.Context, id uuid.UUID) (*entity.FilterPreset, error) {
	preset, err := srv.presetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFilterPresetNotFound) {
			return nil, domainerrors.ErrFilterPresetNotFound
		}

		return nil, errors.Wrap(err, "failed to find filter preset")
	}

	return preset, nil
}
