package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadgrid/config"
	"leadgrid/internal/delivery/api/middleware"
	"leadgrid/internal/delivery/api/router/handler"
	"leadgrid/internal/delivery/api/validator"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	mockSvc "leadgrid/internal/mocks/service"
	mockUsecase "leadgrid/internal/mocks/usecase"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	operatorToken = "operator-token"
	reviewerToken = "reviewer-token"
)

type routerFixture struct {
	echo       *echo.Echo
	zoneUC     *mockUsecase.MockZoneUsecase
	strategyUC *mockUsecase.MockStrategyUsecase
	draftUC    *mockUsecase.MockDraftUsecase
	linkUC     *mockUsecase.MockShortLinkUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(operatorToken).Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  []string{entity.RoleOperator.String()},
	}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(reviewerToken).Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  []string{entity.RoleReviewer.String()},
	}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("invalid token")).Maybe()

	f := &routerFixture{
		echo:       echo.New(),
		zoneUC:     mockUsecase.NewMockZoneUsecase(t),
		strategyUC: mockUsecase.NewMockStrategyUsecase(t),
		draftUC:    mockUsecase.NewMockDraftUsecase(t),
		linkUC:     mockUsecase.NewMockShortLinkUsecase(t),
	}
	f.echo.Validator = validator.New()

	reportUC := mockUsecase.NewMockReportUsecase(t)
	filterUC := mockUsecase.NewMockBusinessFilterUsecase(t)
	activationUC := mockUsecase.NewMockActivationUsecase(t)

	r := NewRouter(RouterParams{
		StrategyHandler:   handler.NewStrategyHandler(handler.StrategyHandlerParams{StrategyUC: f.strategyUC, Logger: logger}),
		ZoneHandler:       handler.NewZoneHandler(handler.ZoneHandlerParams{ZoneUC: f.zoneUC, ReportUC: reportUC, Logger: logger}),
		DraftHandler:      handler.NewDraftHandler(handler.DraftHandlerParams{DraftUC: f.draftUC, Logger: logger}),
		BusinessHandler:   handler.NewBusinessHandler(handler.BusinessHandlerParams{FilterUC: filterUC, Logger: logger}),
		ActivationHandler: handler.NewActivationHandler(handler.ActivationHandlerParams{ActivationUC: activationUC, Logger: logger}),
		WebhookHandler:    handler.NewWebhookHandler(handler.WebhookHandlerParams{ActivationUC: activationUC, Config: &config.Config{}, Logger: logger}),
		LinkHandler:       handler.NewLinkHandler(handler.LinkHandlerParams{ShortLinkUC: f.linkUC, Logger: logger}),
		SessionHandler:    handler.NewSessionHandler(),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_LiteralRoutesAreNotShadowed(t *testing.T) {
	t.Run("qr route is not captured by the redirect", func(t *testing.T) {
		f := newRouterFixture(t)
		f.linkUC.EXPECT().GenerateQRCode(mock.Anything, "abc1234").Return([]byte("png"), nil).Once()

		rec := f.do(http.MethodGet, "/l/abc1234/qr", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("redirect route still resolves tokens", func(t *testing.T) {
		f := newRouterFixture(t)
		f.linkUC.EXPECT().Resolve(mock.Anything, "abc1234").Return("https://sites.example.com/s1", nil).Once()

		rec := f.do(http.MethodGet, "/l/abc1234", "", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://sites.example.com/s1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("sweep is not treated as a zone id", func(t *testing.T) {
		f := newRouterFixture(t)
		f.zoneUC.EXPECT().ReleaseStaleZones(mock.Anything).Return(2, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/zones/sweep", operatorToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"released":2`)
	})

	t.Run("zone id routes still match", func(t *testing.T) {
		f := newRouterFixture(t)
		zoneID := uuid.New()
		f.zoneUC.EXPECT().ScrapeZone(mock.Anything, zoneID, entity.ScrapeModeDraft).
			Return(&usecase.ZoneResult{Zone: &entity.Zone{ID: zoneID}}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/zones/"+zoneID.String()+"/scrape", operatorToken, `{"mode":"draft"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("strategy collection is not captured by the id route", func(t *testing.T) {
		f := newRouterFixture(t)
		f.strategyUC.EXPECT().ListStrategies(mock.Anything, 0, 0).Return([]*entity.Strategy{}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/strategies", operatorToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Authorization(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{name: "missing token", method: http.MethodGet, target: "/api/v1/strategies", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", method: http.MethodGet, target: "/api/v1/strategies", token: "bogus", wantStatus: http.StatusUnauthorized},
		{name: "reviewer cannot run operator routes", method: http.MethodPost, target: "/api/v1/zones/sweep", token: reviewerToken, wantStatus: http.StatusForbidden},
		{name: "operator cannot review drafts", method: http.MethodPost, target: "/api/v1/drafts/" + uuid.NewString() + "/promote", token: operatorToken, wantStatus: http.StatusForbidden},
		{name: "health is public", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			rec := f.do(tt.method, tt.target, tt.token, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_ReviewerPromotesDraft(t *testing.T) {
	f := newRouterFixture(t)
	draftID := uuid.New()
	f.draftUC.EXPECT().PromoteDraft(mock.Anything, draftID, mock.Anything).
		Return(&entity.DraftCampaign{ID: draftID, Status: entity.DraftStatusPromoted}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/drafts/"+draftID.String()+"/promote", reviewerToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"promoted"`)
}
