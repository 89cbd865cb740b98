package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// EventType routes an event to its consumer.
type EventType string

const (
	// EventZoneScrape asks a worker to scrape one zone.
	EventZoneScrape EventType = "zone.scrape"
	// EventOutreachRequested hands newly qualified businesses to outreach.
	EventOutreachRequested EventType = "outreach.requested"
	// EventCustomerWelcome asks the mail collaborator to welcome a new owner.
	EventCustomerWelcome EventType = "customer.welcome"
)

// Event is the envelope published to the message queue
type Event struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEvent builds an envelope around a JSON-encodable payload.
func NewEvent(eventType EventType, requestID string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s payload", eventType)
	}

	return &Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}, nil
}

// ZoneScrapePayload is the payload of EventZoneScrape.
type ZoneScrapePayload struct {
	ZoneID     string `json:"zone_id"`
	StrategyID string `json:"strategy_id"`
	Mode       string `json:"mode"`
}

// OutreachPayload is the payload of EventOutreachRequested.
type OutreachPayload struct {
	StrategyID  string   `json:"strategy_id"`
	ZoneID      string   `json:"zone_id"`
	DraftID     string   `json:"draft_id,omitempty"`
	BusinessIDs []string `json:"business_ids"`
}

// WelcomePayload is the payload of EventCustomerWelcome. TempPassword is only set for
// customers created by this activation; BillingFailed asks the customer to update their
// payment method.
type WelcomePayload struct {
	ActivationID  string `json:"activation_id"`
	CustomerID    string `json:"customer_id"`
	Email         string `json:"email"`
	SiteID        string `json:"site_id"`
	ShortURL      string `json:"short_url,omitempty"`
	TempPassword  string `json:"temp_password,omitempty"`
	BillingFailed bool   `json:"billing_failed,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
