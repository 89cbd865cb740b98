// Package handler contains the Pub/Sub push handler of the scrape worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"leadgrid/config"
	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/constants"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultWorkerConcurrency = 4

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler runs zone scrapes delivered by Pub/Sub push, at most `worker.concurrency` at a time
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	zoneUC         usecase.ZoneUsecase
	slots          chan struct{}
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	ZoneUC usecase.ZoneUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	concurrency := defaultWorkerConcurrency
	if params.Config.Worker != nil && params.Config.Worker.Concurrency > 0 {
		concurrency = params.Config.Worker.Concurrency
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		zoneUC:         params.ZoneUC,
		slots:          make(chan struct{}, concurrency),
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 200 acknowledges the message, 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		h.logger.Warn("[Worker] Worker pool is full, asking for redelivery")

		return c.NoContent(http.StatusServiceUnavailable)
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.Type != service.EventZoneScrape {
		reqLogger.Warn("[Worker] Ignoring event of unexpected type",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.processScrape(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process zone scrape",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processScrape runs one zone scrape. Outcomes already recorded on the zone are not retried.
func (h *PushHandler) processScrape(ctx context.Context, log *slog.Logger, event *service.Event) error {
	var payload service.ZoneScrapePayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return errors.Wrap(err, "invalid zone scrape payload")
	}

	zoneID, err := uuid.Parse(payload.ZoneID)
	if err != nil {
		return errors.Wrap(err, "invalid zone id")
	}

	result, err := h.zoneUC.ScrapeZone(ctx, zoneID, entity.ScrapeMode(payload.Mode))
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrZoneBusy),
			errors.Is(err, domainerrors.ErrZoneNotScrapeable),
			errors.Is(err, domainerrors.ErrZoneNotFound),
			errors.Is(err, domainerrors.ErrZoneFailed):
			log.Info("[Worker] Zone scrape settled without completion",
				slog.String("zone_id", zoneID.String()),
				slog.String("reason", err.Error()),
			)

			return nil
		}

		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			return err
		}

		return newRetryableError(err)
	}

	log.Info("[Worker] Zone scrape completed",
		slog.String("zone_id", zoneID.String()),
		slog.Int("total", result.Summary.Total),
		slog.Int("newly_qualified", len(result.NewlyQualified)),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
