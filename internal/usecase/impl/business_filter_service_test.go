package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"
	mockRepo "leadgrid/internal/mocks/repository"
	mockSvc "leadgrid/internal/mocks/service"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessFilterFixtures struct {
	service      usecase.BusinessFilterUsecase
	businessRepo *mockRepo.MockBusinessRepository
	presetRepo   *mockRepo.MockFilterPresetRepository
	exporter     *mockSvc.MockBusinessExporter
}

func createTestBusinessFilterService(t *testing.T) businessFilterFixtures {
	fx := businessFilterFixtures{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		presetRepo:   mockRepo.NewMockFilterPresetRepository(t),
		exporter:     mockSvc.NewMockBusinessExporter(t),
	}

	fx.service = NewBusinessFilterService(BusinessFilterServiceParams{
		BusinessRepo: fx.businessRepo,
		PresetRepo:   fx.presetRepo,
		Exporter:     fx.exporter,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func clause(op entity.FilterOp, value string) entity.FilterClause {
	return entity.FilterClause{Op: op, Value: json.RawMessage(value)}
}

func TestCompileFilter_CategoryAndWebsiteStatus(t *testing.T) {
	spec := entity.FilterSpec{
		"category":       clause(entity.FilterOpEq, `"plumbing"`),
		"website_status": clause(entity.FilterOpEq, `"invalid"`),
	}

	normalized, predicates, err := compileFilter(spec)
	require.NoError(t, err)

	require.Len(t, predicates, 2)
	assert.Equal(t, repository.BusinessPredicate{Column: "category", Op: entity.FilterOpEq, Values: []any{"plumbing"}}, predicates[0])
	assert.Equal(t, repository.BusinessPredicate{Column: "website_status", Op: entity.FilterOpEq, Values: []any{"invalid"}}, predicates[1])
	assert.JSONEq(t, `"plumbing"`, string(normalized["category"].Value))
	assert.JSONEq(t, `"invalid"`, string(normalized["website_status"].Value))
}

func TestCompileFilter_TypedValues(t *testing.T) {
	strategyID := uuid.New()
	spec := entity.FilterSpec{
		"strategy_id":         clause(entity.FilterOpIn, `["`+strategyID.String()+`"]`),
		"has_email":           clause(entity.FilterOpIs, `true`),
		"rating":              clause(entity.FilterOpBetween, `[3.5, 5]`),
		"qualification_score": clause(entity.FilterOpGte, `60`),
	}

	_, predicates, err := compileFilter(spec)
	require.NoError(t, err)

	byColumn := make(map[string]repository.BusinessPredicate, len(predicates))
	for _, p := range predicates {
		byColumn[p.Column] = p
	}

	assert.Equal(t, []any{strategyID}, byColumn["strategy_id"].Values)
	assert.Equal(t, []any{true}, byColumn["email"].Values)
	assert.Equal(t, []any{3.5, 5.0}, byColumn["rating"].Values)
	assert.Equal(t, []any{int64(60)}, byColumn["qualification_score"].Values)
}

func TestCompileFilter_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		spec  entity.FilterSpec
		field string
	}{
		{"unknown field", entity.FilterSpec{"owner_ssn": clause(entity.FilterOpEq, `"x"`)}, "owner_ssn"},
		{"operator not allowed", entity.FilterSpec{"category": clause(entity.FilterOpGt, `"a"`)}, "category"},
		{"bad website status", entity.FilterSpec{"website_status": clause(entity.FilterOpEq, `"broken"`)}, "website_status"},
		{"empty in list", entity.FilterSpec{"category": clause(entity.FilterOpIn, `[]`)}, "category"},
		{"inverted between", entity.FilterSpec{"rating": clause(entity.FilterOpBetween, `[5, 1]`)}, "rating"},
		{"fractional integer", entity.FilterSpec{"review_count": clause(entity.FilterOpGt, `2.5`)}, "review_count"},
		{"bad uuid", entity.FilterSpec{"zone_id": clause(entity.FilterOpEq, `"zone-1"`)}, "zone_id"},
		{"missing value", entity.FilterSpec{"qualified": {Op: entity.FilterOpIs}}, "qualified"},
		{"first field reported", entity.FilterSpec{
			"zzz": clause(entity.FilterOpEq, `1`),
			"aaa": clause(entity.FilterOpEq, `1`),
		}, "aaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := compileFilter(tt.spec)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestMergeFilters_ExplicitWins(t *testing.T) {
	preset := entity.FilterSpec{
		"category":  clause(entity.FilterOpEq, `"plumbing"`),
		"qualified": clause(entity.FilterOpIs, `true`),
	}
	explicit := entity.FilterSpec{"category": clause(entity.FilterOpEq, `"roofing"`)}

	merged := mergeFilters(preset, explicit)

	assert.Len(t, merged, 2)
	assert.JSONEq(t, `"roofing"`, string(merged["category"].Value))
	assert.JSONEq(t, `"plumbing"`, string(preset["category"].Value))
}

func TestBusinessFilterService_Search_EchoesAppliedFilter(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	ctx := context.Background()
	businesses := []*entity.Business{{ID: uuid.New(), Category: "plumbing", WebsiteStatus: entity.WebsiteStatusInvalid}}

	fx.businessRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(q repository.BusinessQuery) bool {
			return len(q.Predicates) == 2 && q.Limit == 10 && q.Offset == 20
		})).
		Return(businesses, int64(21), nil)

	result, err := fx.service.Search(ctx, uuid.New(), &usecase.BusinessSearchInput{
		Filter: entity.FilterSpec{
			"category":       clause(entity.FilterOpEq, `"plumbing"`),
			"website_status": clause(entity.FilterOpEq, `"invalid"`),
		},
		Page:     3,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, businesses, result.Businesses)
	assert.Equal(t, int64(21), result.Total)
	assert.Equal(t, 3, result.Page)
	assert.JSONEq(t, `"plumbing"`, string(result.AppliedFilter["category"].Value))
	assert.JSONEq(t, `"invalid"`, string(result.AppliedFilter["website_status"].Value))
}

func TestBusinessFilterService_Search_PageDefaults(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		Search(ctx, repository.BusinessQuery{Predicates: []repository.BusinessPredicate{}, Limit: 100, Offset: 0}).
		Return(nil, int64(0), nil)

	result, err := fx.service.Search(ctx, uuid.New(), &usecase.BusinessSearchInput{PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PageSize)
}

func TestBusinessFilterService_Search_InvalidField(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	_, err := fx.service.Search(context.Background(), uuid.New(), &usecase.BusinessSearchInput{
		Filter: entity.FilterSpec{"password": clause(entity.FilterOpEq, `"x"`)},
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "password", validationErr.Field)
}

func TestBusinessFilterService_Search_WithPreset(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	preset := &entity.FilterPreset{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Filter:  entity.FilterSpec{"category": clause(entity.FilterOpEq, `"plumbing"`)},
	}

	fx.presetRepo.EXPECT().FindByID(ctx, preset.ID).Return(preset, nil)
	fx.businessRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(q repository.BusinessQuery) bool {
			return len(q.Predicates) == 2
		})).
		Return(nil, int64(0), nil)

	result, err := fx.service.Search(ctx, ownerID, &usecase.BusinessSearchInput{
		PresetID: &preset.ID,
		Filter:   entity.FilterSpec{"qualified": clause(entity.FilterOpIs, `true`)},
	})
	require.NoError(t, err)
	assert.Len(t, result.AppliedFilter, 2)
}

func TestBusinessFilterService_Search_PresetForbidden(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	ctx := context.Background()
	preset := &entity.FilterPreset{ID: uuid.New(), OwnerID: uuid.New(), IsPublic: false}

	fx.presetRepo.EXPECT().FindByID(ctx, preset.ID).Return(preset, nil)

	_, err := fx.service.Search(ctx, uuid.New(), &usecase.BusinessSearchInput{PresetID: &preset.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrFilterPresetForbidden))
}

func TestBusinessFilterService_Export(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	ctx := context.Background()
	businesses := []*entity.Business{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.businessRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(q repository.BusinessQuery) bool { return q.Limit == 1000 && q.Offset == 0 })).
		Return(businesses, int64(2), nil)
	fx.exporter.EXPECT().Export(businesses).Return([]byte("xlsx-bytes"), nil)
	fx.exporter.EXPECT().FileExtension().Return(".xlsx")
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	file, err := fx.service.Export(ctx, uuid.New(), &usecase.BusinessSearchInput{})
	require.NoError(t, err)

	assert.Equal(t, 2, file.Rows)
	assert.True(t, strings.HasPrefix(file.Filename, "businesses-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
	assert.Equal(t, []byte("xlsx-bytes"), file.Content)
}

func TestBusinessFilterService_CreatePreset(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.presetRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.FilterPreset) bool {
			return p.Name == "Plumbers" && p.OwnerID == ownerID && p.IsPublic && len(p.Filter) == 1
		})).
		Return(nil)

	preset, err := fx.service.CreatePreset(ctx, ownerID, &usecase.CreatePresetInput{
		Name:     "  Plumbers ",
		IsPublic: true,
		Filter:   entity.FilterSpec{"category": clause(entity.FilterOpEq, ` "plumbing" `)},
	})
	require.NoError(t, err)
	assert.Equal(t, `"plumbing"`, string(preset.Filter["category"].Value))
}

func TestBusinessFilterService_CreatePreset_InvalidFilter(t *testing.T) {
	fx := createTestBusinessFilterService(t)

	_, err := fx.service.CreatePreset(context.Background(), uuid.New(), &usecase.CreatePresetInput{
		Name:   "Broken",
		Filter: entity.FilterSpec{"rating": clause(entity.FilterOpIn, `"5"`)},
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "rating", validationErr.Field)
}

func TestBusinessFilterService_DeletePreset(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestBusinessFilterService(t)

		ctx := context.Background()
		preset := &entity.FilterPreset{ID: uuid.New(), OwnerID: uuid.New()}

		fx.presetRepo.EXPECT().FindByID(ctx, preset.ID).Return(preset, nil)
		fx.presetRepo.EXPECT().Delete(ctx, preset.ID, preset.OwnerID).Return(nil)

		require.NoError(t, fx.service.DeletePreset(ctx, preset.OwnerID, preset.ID))
	})

	t.Run("public preset of another owner", func(t *testing.T) {
		fx := createTestBusinessFilterService(t)

		ctx := context.Background()
		preset := &entity.FilterPreset{ID: uuid.New(), OwnerID: uuid.New(), IsPublic: true}

		fx.presetRepo.EXPECT().FindByID(ctx, preset.ID).Return(preset, nil)

		err := fx.service.DeletePreset(ctx, uuid.New(), preset.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrFilterPresetForbidden))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestBusinessFilterService(t)

		ctx := context.Background()
		id := uuid.New()

		fx.presetRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrFilterPresetNotFound)

		err := fx.service.DeletePreset(ctx, uuid.New(), id)
		assert.True(t, errors.Is(err, domainerrors.ErrFilterPresetNotFound))
	})
}
