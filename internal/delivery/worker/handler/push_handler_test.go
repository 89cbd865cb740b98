package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadgrid/config"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	mockUsecase "leadgrid/internal/mocks/usecase"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, concurrency int) (*PushHandler, *mockUsecase.MockZoneUsecase) {
	t.Helper()

	zoneUC := mockUsecase.NewMockZoneUsecase(t)
	cfg := &config.Config{Worker: &config.WorkerConfig{Concurrency: concurrency}}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ZoneUC: zoneUC,
	}), zoneUC
}

func pushBody(t *testing.T, eventType service.EventType, payload any) string {
	t.Helper()

	event, err := service.NewEvent(eventType, "req-1", payload)
	require.NoError(t, err)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(t *testing.T, h *PushHandler, body string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func TestPushHandler_HandlePush(t *testing.T) {
	zoneID := uuid.New()
	scrapePayload := service.ZoneScrapePayload{ZoneID: zoneID.String(), StrategyID: uuid.NewString(), Mode: "draft"}

	t.Run("completed scrape is acknowledged", func(t *testing.T) {
		h, zoneUC := newPushHandler(t, 2)
		zoneUC.EXPECT().ScrapeZone(mock.Anything, zoneID, entity.ScrapeModeDraft).
			Return(&usecase.ZoneResult{Zone: &entity.Zone{ID: zoneID}}, nil).Once()

		assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, service.EventZoneScrape, scrapePayload)))
	})

	settled := []error{
		domainerrors.ErrZoneBusy,
		domainerrors.ErrZoneNotScrapeable,
		domainerrors.ErrZoneNotFound,
		errors.Wrap(domainerrors.ErrZoneFailed, "provider: permanent"),
		domainerrors.NewValidationError("mode", "must be draft or live"),
	}
	for _, settledErr := range settled {
		t.Run("settled outcome is acknowledged: "+settledErr.Error(), func(t *testing.T) {
			h, zoneUC := newPushHandler(t, 2)
			zoneUC.EXPECT().ScrapeZone(mock.Anything, zoneID, entity.ScrapeModeDraft).Return(nil, settledErr).Once()

			assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, service.EventZoneScrape, scrapePayload)))
		})
	}

	t.Run("storage failure asks for redelivery", func(t *testing.T) {
		h, zoneUC := newPushHandler(t, 2)
		zoneUC.EXPECT().ScrapeZone(mock.Anything, zoneID, entity.ScrapeModeDraft).
			Return(nil, errors.New("connection refused")).Once()

		assert.Equal(t, http.StatusServiceUnavailable, push(t, h, pushBody(t, service.EventZoneScrape, scrapePayload)))
	})

	t.Run("unexpected event type is dropped", func(t *testing.T) {
		h, _ := newPushHandler(t, 2)

		assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, service.EventOutreachRequested, service.OutreachPayload{})))
	})

	t.Run("invalid zone id is dropped", func(t *testing.T) {
		h, _ := newPushHandler(t, 2)
		payload := service.ZoneScrapePayload{ZoneID: "zone-1", Mode: "draft"}

		assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, service.EventZoneScrape, payload)))
	})

	t.Run("undecodable data is a bad request", func(t *testing.T) {
		h, _ := newPushHandler(t, 2)

		assert.Equal(t, http.StatusBadRequest, push(t, h, `{"message":{"data":"%%%"}}`))
	})

	t.Run("full pool asks for redelivery", func(t *testing.T) {
		h, _ := newPushHandler(t, 1)
		h.slots <- struct{}{}
		defer func() { <-h.slots }()

		assert.Equal(t, http.StatusServiceUnavailable, push(t, h, pushBody(t, service.EventZoneScrape, scrapePayload)))
	})
}

func TestPushHandler_ReleasesSlot(t *testing.T) {
	h, zoneUC := newPushHandler(t, 1)
	zoneID := uuid.New()
	zoneUC.EXPECT().ScrapeZone(mock.Anything, zoneID, entity.ScrapeModeLive).
		Return(&usecase.ZoneResult{Zone: &entity.Zone{ID: zoneID}}, nil).Twice()

	body := pushBody(t, service.EventZoneScrape, service.ZoneScrapePayload{ZoneID: zoneID.String(), Mode: "live"})

	assert.Equal(t, http.StatusOK, push(t, h, body))
	assert.Equal(t, http.StatusOK, push(t, h, body))
	assert.Empty(t, h.slots)
}
