// Package payment implements the PaymentGateway boundary over the billing provider's HTTP API.
package payment

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"leadgrid/config"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"

	"github.com/go-resty/resty/v2"
)

const (
	subscriptionsPath = "/v1/subscriptions"
	headerIdempotency = "Idempotency-Key"
	retryCount        = 2
)

type createSubscriptionRequest struct {
	CustomerEmail      string            `json:"customer_email"`
	CustomerName       string            `json:"customer_name,omitempty"`
	PaymentMethodToken string            `json:"payment_method_token"`
	PlanID             string            `json:"plan_id"`
	Amount             int64             `json:"amount"`
	Currency           string            `json:"currency,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

type subscriptionResponse struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	NextChargeAt *time.Time `json:"next_charge_at"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpGateway implements service.PaymentGateway with resty.
type httpGateway struct {
	client *resty.Client
	planID string
	logger *slog.Logger
}

// NewHTTPGateway creates the payment client from payment.* configuration.
// Requests carry an idempotency key, so 5xx and network failures are retried by resty.
func NewHTTPGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	paymentCfg := cfg.Payment
	if paymentCfg == nil {
		paymentCfg = &config.PaymentConfig{}
	}

	client := resty.New().
		SetBaseURL(paymentCfg.BaseURL).
		SetTimeout(paymentCfg.Timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}

			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if paymentCfg.APIKey != "" {
		client.SetAuthToken(paymentCfg.APIKey)
	}

	return &httpGateway{
		client: client,
		planID: paymentCfg.PlanID,
		logger: logger,
	}
}

// CreateRecurringSubscription creates or returns the subscription bound to req.IdempotencyKey.
func (g *httpGateway) CreateRecurringSubscription(ctx context.Context, req *service.RecurringSubscriptionRequest) (*service.ProviderSubscription, error) {
	planID := req.PlanID
	if planID == "" {
		planID = g.planID
	}

	var result subscriptionResponse
	var failure errorResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader(headerIdempotency, req.IdempotencyKey).
		SetBody(createSubscriptionRequest{
			CustomerEmail:      req.CustomerEmail,
			CustomerName:       req.CustomerName,
			PaymentMethodToken: req.PaymentMethodToken,
			PlanID:             planID,
			Amount:             req.Amount,
			Currency:           req.Currency,
			Metadata:           req.Metadata,
		}).
		SetResult(&result).
		SetError(&failure).
		Post(subscriptionsPath)
	if err != nil {
		return nil, errors.Wrap(err, "payment provider request failed")
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return nil, errors.Errorf("payment provider unavailable: %d", status)
	case status >= http.StatusBadRequest:
		g.logger.Warn("Payment provider rejected subscription",
			slog.String("idempotency_key", req.IdempotencyKey),
			slog.Int("status", status),
			slog.String("code", failure.Code),
		)

		code := failure.Code
		if code == "" {
			code = http.StatusText(status)
		}

		return nil, &service.PaymentRejectedError{Code: code, Reason: failure.Message}
	}

	if result.ID == "" {
		return nil, errors.New("payment provider returned a subscription without id")
	}

	return &service.ProviderSubscription{
		ID:           result.ID,
		Status:       result.Status,
		NextChargeAt: result.NextChargeAt,
	}, nil
}
