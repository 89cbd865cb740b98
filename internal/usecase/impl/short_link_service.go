package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"net/url"
	"strings"
	"time"

	"leadgrid/config"
	deliverycontext "leadgrid/internal/delivery/context"
	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// shortLinkService implements the ShortLinkUsecase interface.
type shortLinkService struct {
	linkRepo      repository.ShortLinkRepository
	qrcodeService service.QRCodeService
	baseURL       string
	tokenLength   int
	maxAttempts   int
	logger        *slog.Logger
	now           func() time.Time
	newToken      func(length int) (string, error)
}

// ShortLinkServiceParams holds dependencies for ShortLinkService, injected by Fx.
type ShortLinkServiceParams struct {
	fx.In

	LinkRepo      repository.ShortLinkRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShortLinkService is the constructor for shortLinkService.
func NewShortLinkService(params ShortLinkServiceParams) usecase.ShortLinkUsecase {
	srv := &shortLinkService{
		linkRepo:      params.LinkRepo,
		qrcodeService: params.QRCodeService,
		tokenLength:   7,
		maxAttempts:   5,
		logger:        params.Logger,
		now:           func() time.Time { return time.Now().UTC() },
		newToken:      generateToken,
	}

	if params.Config != nil && params.Config.ShortLink != nil {
		srv.baseURL = strings.TrimRight(params.Config.ShortLink.BaseURL, "/")
		if params.Config.ShortLink.TokenLength > 0 {
			srv.tokenLength = params.Config.ShortLink.TokenLength
		}
		if params.Config.ShortLink.MaxIssueAttempts > 0 {
			srv.maxAttempts = params.Config.ShortLink.MaxIssueAttempts
		}
	}

	return srv
}

func (srv *shortLinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue returns the active link for the destination and type, creating it if absent.
// Concurrent callers converge on the single row admitted by the partial unique index.
func (srv *shortLinkService) Issue(ctx context.Context, destination, linkType string) (*entity.ShortLink, error) {
	if err := validateDestination(destination); err != nil {
		return nil, err
	}
	if strings.TrimSpace(linkType) == "" {
		return nil, domainerrors.NewValidationError("link_type", "is required")
	}

	existing, err := srv.findActive(ctx, destination, linkType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		token, err := srv.newToken(srv.tokenLength)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate short link token")
		}

		link := &entity.ShortLink{
			ID:          uuid.New(),
			Token:       token,
			Destination: destination,
			LinkType:    linkType,
			Active:      true,
		}

		created, err := srv.linkRepo.InsertIfAbsent(ctx, link)
		if err != nil {
			if errors.Is(err, repository.ErrTokenCollision) {
				srv.log(ctx).Debug("Short link token collision, regenerating", slog.Int("attempt", attempt))

				continue
			}

			return nil, errors.Wrap(err, "failed to insert short link")
		}

		if created {
			srv.log(ctx).Info("Short link issued", slog.String("token", link.Token), slog.String("linkType", linkType))

			return link, nil
		}

		// Another caller won the race; its row is the answer.
		winner, err := srv.findActive(ctx, destination, linkType)
		if err != nil {
			return nil, err
		}
		if winner != nil {
			return winner, nil
		}
	}

	return nil, domainerrors.ErrShortLinkIssueFailed
}

// Resolve returns the destination of an active link and counts the click.
func (srv *shortLinkService) Resolve(ctx context.Context, token string) (string, error) {
	link, err := srv.activeByToken(ctx, token)
	if err != nil {
		return "", err
	}

	if err := srv.linkRepo.IncrementClicks(ctx, link.ID); err != nil {
		srv.log(ctx).Warn("Failed to count short link click", slog.String("token", token), slog.Any("error", err))
	}

	return link.Destination, nil
}

// Deactivate soft-deletes a link.
func (srv *shortLinkService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := srv.linkRepo.Deactivate(ctx, id, srv.now()); err != nil {
		if errors.Is(err, repository.ErrShortLinkNotFound) {
			return domainerrors.ErrShortLinkNotFound
		}

		return errors.Wrap(err, "failed to deactivate short link")
	}

	return nil
}

// GenerateQRCode renders the public URL of an active link as a PNG.
func (srv *shortLinkService) GenerateQRCode(ctx context.Context, token string) ([]byte, error) {
	link, err := srv.activeByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GeneratePNG(srv.PublicURL(link.Token))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// PublicURL returns the shareable URL of a token.
func (srv *shortLinkService) PublicURL(token string) string {
	return srv.baseURL + "/l/" + token
}

func (srv *shortLinkService) activeByToken(ctx context.Context, token string) (*entity.ShortLink, error) {
	link, err := srv.linkRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrShortLinkNotFound) {
			return nil, domainerrors.ErrShortLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find short link")
	}

	if !link.Active {
		return nil, domainerrors.ErrShortLinkNotFound
	}

	return link, nil
}

// findActive returns nil without error when no active link exists.
func (srv *shortLinkService) findActive(ctx context.Context, destination, linkType string) (*entity.ShortLink, error) {
	link, err := srv.linkRepo.FindActive(ctx, destination, linkType)
	if err != nil {
		if errors.Is(err, repository.ErrShortLinkNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find active short link")
	}

	return link, nil
}

func validateDestination(destination string) error {
	parsed, err := url.Parse(destination)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return domainerrors.NewValidationError("destination", "must be an absolute http(s) URL")
	}

	return nil
}

// generateToken draws length characters uniformly from tokenCharset.
func generateToken(length int) (string, error) {
	b := make([]byte, length)
	limit := big.NewInt(int64(len(tokenCharset)))

	for i := range b {
		num, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = tokenCharset[num.Int64()]
	}

	return string(b), nil
}
