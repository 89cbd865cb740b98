package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadgrid/internal/delivery/api/validator"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	mockUsecase "leadgrid/internal/mocks/usecase"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newContext builds an echo context with an optional authenticated operator.
func newContext(method, target, body string, operator *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if operator != nil {
		c.Set("userID", *operator)
	}

	return c, rec
}

func TestStrategyHandler_CreateStrategy(t *testing.T) {
	t.Run("maps bounds to the market descriptor", func(t *testing.T) {
		strategyUC := mockUsecase.NewMockStrategyUsecase(t)
		h := NewStrategyHandler(StrategyHandlerParams{StrategyUC: strategyUC, Logger: newTestLogger()})

		wantBounds := orb.Bound{Min: orb.Point{-122.52, 37.70}, Max: orb.Point{-122.35, 37.83}}
		strategyUC.EXPECT().CreateStrategy(mock.Anything, entity.MarketDescriptor{
			Region:   "San Francisco",
			Category: "plumbing",
			Bounds:   wantBounds,
		}).Return(&usecase.StrategyDetail{Strategy: &entity.Strategy{Region: "San Francisco"}}, nil).Once()

		c, rec := newContext(http.MethodPost, "/api/v1/strategies",
			`{"region":"San Francisco","category":"plumbing","bounds":{"min_lng":-122.52,"min_lat":37.70,"max_lng":-122.35,"max_lat":37.83}}`, nil)

		require.NoError(t, h.CreateStrategy(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects inverted bounds before calling the usecase", func(t *testing.T) {
		strategyUC := mockUsecase.NewMockStrategyUsecase(t)
		h := NewStrategyHandler(StrategyHandlerParams{StrategyUC: strategyUC, Logger: newTestLogger()})

		c, rec := newContext(http.MethodPost, "/api/v1/strategies",
			`{"region":"SF","category":"plumbing","bounds":{"min_lng":10,"min_lat":10,"max_lng":5,"max_lat":20}}`, nil)

		require.NoError(t, h.CreateStrategy(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "max_lng")
	})

	t.Run("missing region", func(t *testing.T) {
		strategyUC := mockUsecase.NewMockStrategyUsecase(t)
		h := NewStrategyHandler(StrategyHandlerParams{StrategyUC: strategyUC, Logger: newTestLogger()})

		c, rec := newContext(http.MethodPost, "/api/v1/strategies", `{"category":"plumbing"}`, nil)

		require.NoError(t, h.CreateStrategy(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "region")
	})
}

func TestStrategyHandler_DispatchScrapes(t *testing.T) {
	strategyUC := mockUsecase.NewMockStrategyUsecase(t)
	h := NewStrategyHandler(StrategyHandlerParams{StrategyUC: strategyUC, Logger: newTestLogger()})
	strategyID := uuid.New()

	t.Run("archived strategy", func(t *testing.T) {
		strategyUC.EXPECT().DispatchScrapes(mock.Anything, strategyID, entity.ScrapeModeLive).
			Return(nil, domainerrors.ErrStrategyArchived).Once()

		c, rec := newContext(http.MethodPost, "/", `{"mode":"live"}`, nil)
		c.SetParamNames("id")
		c.SetParamValues(strategyID.String())

		require.NoError(t, h.DispatchScrapes(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "STRATEGY_ARCHIVED")
	})

	t.Run("unknown mode", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/", `{"mode":"batch"}`, nil)
		c.SetParamNames("id")
		c.SetParamValues(strategyID.String())

		require.NoError(t, h.DispatchScrapes(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/", `{"mode":"live"}`, nil)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.DispatchScrapes(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}

func TestBusinessHandler_SearchBusinesses(t *testing.T) {
	filterUC := mockUsecase.NewMockBusinessFilterUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{FilterUC: filterUC, Logger: newTestLogger()})
	callerID := uuid.New()

	filterUC.EXPECT().Search(mock.Anything, callerID, mock.MatchedBy(func(input *usecase.BusinessSearchInput) bool {
		return input.Filter["category"].Op == entity.FilterOpEq &&
			input.Filter["website_status"].Op == entity.FilterOpEq &&
			input.Page == 2 && input.PageSize == 10
	})).Return(&usecase.BusinessSearchResult{Page: 2, PageSize: 10, Total: 1}, nil).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/businesses/search",
		`{"filter":{"category":{"op":"eq","value":"plumbing"},"website_status":{"op":"eq","value":"invalid"}},"page":2,"page_size":10}`, &callerID)

	require.NoError(t, h.SearchBusinesses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestBusinessHandler_RequiresOperator(t *testing.T) {
	h := NewBusinessHandler(BusinessHandlerParams{FilterUC: mockUsecase.NewMockBusinessFilterUsecase(t), Logger: newTestLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/filter-presets", "", nil)

	require.NoError(t, h.ListPresets(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBusinessHandler_ExportBusinesses(t *testing.T) {
	filterUC := mockUsecase.NewMockBusinessFilterUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{FilterUC: filterUC, Logger: newTestLogger()})
	callerID := uuid.New()

	filterUC.EXPECT().Export(mock.Anything, callerID, mock.Anything).Return(&usecase.ExportFile{
		Filename:    "businesses-20261017-120000.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("xlsx"),
		Rows:        3,
	}, nil).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/businesses/export", `{"filter":{}}`, &callerID)

	require.NoError(t, h.ExportBusinesses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="businesses-20261017-120000.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "3", rec.Header().Get("X-Export-Rows"))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestBusinessHandler_DeletePreset(t *testing.T) {
	filterUC := mockUsecase.NewMockBusinessFilterUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{FilterUC: filterUC, Logger: newTestLogger()})
	callerID := uuid.New()
	presetID := uuid.New()

	filterUC.EXPECT().DeletePreset(mock.Anything, callerID, presetID).Return(domainerrors.ErrFilterPresetForbidden).Once()

	c, rec := newContext(http.MethodDelete, "/", "", &callerID)
	c.SetParamNames("id")
	c.SetParamValues(presetID.String())

	require.NoError(t, h.DeletePreset(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestActivationHandler_ListActivations(t *testing.T) {
	activationUC := mockUsecase.NewMockActivationUsecase(t)
	h := NewActivationHandler(ActivationHandlerParams{ActivationUC: activationUC, Logger: newTestLogger()})

	activationUC.EXPECT().ListActivations(mock.Anything,
		[]entity.ActivationStatus{entity.ActivationStatusBillingFailed, entity.ActivationStatusFailed}, 20).
		Return([]*entity.Activation{}, nil).Once()

	c, rec := newContext(http.MethodGet, "/api/v1/activations?status=billing_failed,%20failed&limit=20", "", nil)

	require.NoError(t, h.ListActivations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLinkHandler_Redirect(t *testing.T) {
	linkUC := mockUsecase.NewMockShortLinkUsecase(t)
	h := NewLinkHandler(LinkHandlerParams{ShortLinkUC: linkUC, Logger: newTestLogger()})

	linkUC.EXPECT().Resolve(mock.Anything, "gone").Return("", domainerrors.ErrShortLinkNotFound).Once()

	c, rec := newContext(http.MethodGet, "/l/gone", "", nil)
	c.SetParamNames("token")
	c.SetParamValues("gone")

	require.NoError(t, h.Redirect(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
