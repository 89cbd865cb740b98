package repository

import (
	"context"
	"time"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for short link persistence.
var (
	// ErrShortLinkNotFound is returned when a short link is not found.
	ErrShortLinkNotFound = errors.New("short link not found")
	// ErrTokenCollision is returned when a generated token is already taken.
	ErrTokenCollision = errors.New("short link token collision")
)

// ShortLinkRepository defines the interface for short link persistence.
type ShortLinkRepository interface {
	// InsertIfAbsent inserts the link unless an active link already exists for its
	// destination and link type. Returns ErrTokenCollision if the token is taken.
	InsertIfAbsent(ctx context.Context, link *entity.ShortLink) (created bool, err error)

	// FindActive returns the active link for a destination and link type.
	FindActive(ctx context.Context, destination, linkType string) (*entity.ShortLink, error)

	// FindByToken returns the link with the given token, active or not.
	FindByToken(ctx context.Context, token string) (*entity.ShortLink, error)

	// FindByID returns the link with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShortLink, error)

	// IncrementClicks bumps the click counter of an active link.
	IncrementClicks(ctx context.Context, id uuid.UUID) error

	// Deactivate soft-deletes an active link.
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error
}
