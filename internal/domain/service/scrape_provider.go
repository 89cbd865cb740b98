package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ScrapeQuery asks the provider for businesses around a point.
type ScrapeQuery struct {
	Center       orb.Point
	RadiusMeters float64
	Category     string
	Limit        int
}

// RawBusiness is a single provider record before deduplication and scoring.
type RawBusiness struct {
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Category    string          `json:"category"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Website     string          `json:"website"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Raw         json.RawMessage `json:"-"`
}

// ScrapeResult is the provider response for one query.
type ScrapeResult struct {
	Businesses []RawBusiness
	Raw        []byte // Full response body, archived as-is.
}

// ProviderErrorKind separates retryable provider failures from permanent ones.
type ProviderErrorKind string

const (
	ProviderErrorTransient ProviderErrorKind = "transient"
	ProviderErrorPermanent ProviderErrorKind = "permanent"
)

// ProviderError is returned by ScrapeProvider implementations.
type ProviderError struct {
	Kind       ProviderErrorKind
	StatusCode int
	Err        error
}

// NewTransientProviderError wraps err as a retryable provider failure.
func NewTransientProviderError(statusCode int, err error) *ProviderError {
	return &ProviderError{Kind: ProviderErrorTransient, StatusCode: statusCode, Err: err}
}

// NewPermanentProviderError wraps err as a non-retryable provider failure.
func NewPermanentProviderError(statusCode int, err error) *ProviderError {
	return &ProviderError{Kind: ProviderErrorPermanent, StatusCode: statusCode, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsTransientProviderError reports whether err is a retryable provider failure.
func IsTransientProviderError(err error) bool {
	var pe *ProviderError

	return errors.As(err, &pe) && pe.Kind == ProviderErrorTransient
}

// ScrapeProvider defines the boundary to the business listing provider.
type ScrapeProvider interface {
	// Search returns the businesses matching the query.
	Search(ctx context.Context, query ScrapeQuery) (*ScrapeResult, error)
}
