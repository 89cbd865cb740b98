package usecase

import (
	"context"

	"leadgrid/internal/domain/entity"

	"github.com/google/uuid"
)

// ShortLinkUsecase defines the interface for short link management
type ShortLinkUsecase interface {
	// Issue returns the active link for the destination and type, creating it if absent
	Issue(ctx context.Context, destination, linkType string) (*entity.ShortLink, error)

	// Resolve returns the destination of an active link and counts the click
	Resolve(ctx context.Context, token string) (string, error)

	// Deactivate soft-deletes a link
	Deactivate(ctx context.Context, id uuid.UUID) error

	// GenerateQRCode renders the public URL of an active link as a PNG
	GenerateQRCode(ctx context.Context, token string) ([]byte, error)

	// PublicURL returns the shareable URL of a token
	PublicURL(token string) string
}
