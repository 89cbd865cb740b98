package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"leadgrid/config"
	"leadgrid/internal/delivery/api/response"
	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/constants"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const signaturePrefix = "sha256="

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	ActivationUC usecase.ActivationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// WebhookHandler receives payment provider notifications
type WebhookHandler struct {
	activationUC usecase.ActivationUsecase
	secret       []byte
	logger       *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	var secret []byte
	if params.Config != nil && params.Config.Payment != nil {
		secret = []byte(params.Config.Payment.WebhookSecret)
	}

	return &WebhookHandler{
		activationUC: params.ActivationUC,
		secret:       secret,
		logger:       params.Logger,
	}
}

// HandlePaymentSucceeded verifies and processes a payment-succeeded notification.
// 200 means the transaction is recorded (processed or permanently failed) and must
// not be redelivered; 503 asks the provider to retry later.
func (h *WebhookHandler) HandlePaymentSucceeded(c echo.Context) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable webhook body")
	}

	if !h.validSignature(body, c.Request().Header.Get(constants.HeaderSignature)) {
		log.Warn("Rejected payment webhook with invalid signature")

		return response.HandleAppError(c, domainerrors.ErrInvalidSignature)
	}

	var event entity.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment event")
	}

	result, err := h.activationUC.Activate(ctx, &event)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.HandleAppError(c, err)
		}

		log.Error("Payment activation failed, asking provider to retry",
			slog.String("transactionID", event.TransactionID),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, domainerrors.ErrServiceUnavailable)
	}

	return response.Success(c, http.StatusOK, result)
}

// validSignature compares the hex HMAC-SHA256 of the body in constant time.
func (h *WebhookHandler) validSignature(body []byte, signature string) bool {
	if len(h.secret) == 0 || signature == "" {
		return false
	}

	provided := strings.ToLower(strings.TrimPrefix(signature, signaturePrefix))

	return hmac.Equal([]byte(signPayload(h.secret, body)), []byte(provided))
}

func signPayload(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}
