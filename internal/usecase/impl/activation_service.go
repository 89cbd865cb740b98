package impl

import (
	"context"
	"log/slog"
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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const (
	siteLinkType          = "site"
	tempPasswordLength    = 16
	defaultLeaseDuration  = time.Minute
	defaultRetryBackoff   = 100 * time.Millisecond
	defaultActivationList = 50
)

// activationService implements the ActivationUsecase interface.
type activationService struct {
	activationRepo   repository.ActivationRepository
	siteRepo         repository.SiteRepository
	customerRepo     repository.CustomerRepository
	subscriptionRepo repository.SubscriptionRepository
	gateway          service.PaymentGateway
	shortLinks       usecase.ShortLinkUsecase
	hasher           service.PasswordHasher
	publisher        service.EventPublisher
	validate         *validator.Validate
	activationCfg    config.ActivationConfig
	planID           string
	sitesBaseURL     string
	logger           *slog.Logger
	now              func() time.Time
}

// ActivationServiceParams holds dependencies for ActivationService, injected by Fx.
type ActivationServiceParams struct {
	fx.In

	ActivationRepo   repository.ActivationRepository
	SiteRepo         repository.SiteRepository
	CustomerRepo     repository.CustomerRepository
	SubscriptionRepo repository.SubscriptionRepository
	Gateway          service.PaymentGateway
	ShortLinks       usecase.ShortLinkUsecase
	Hasher           service.PasswordHasher
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewActivationService is the constructor for activationService.
func NewActivationService(params ActivationServiceParams) usecase.ActivationUsecase {
	srv := &activationService{
		activationRepo:   params.ActivationRepo,
		siteRepo:         params.SiteRepo,
		customerRepo:     params.CustomerRepo,
		subscriptionRepo: params.SubscriptionRepo,
		gateway:          params.Gateway,
		shortLinks:       params.ShortLinks,
		hasher:           params.Hasher,
		publisher:        params.Publisher,
		validate:         newJSONValidator(),
		logger:           params.Logger,
		now:              func() time.Time { return time.Now().UTC() },
	}

	if params.Config != nil {
		if params.Config.Activation != nil {
			srv.activationCfg = *params.Config.Activation
		}
		if params.Config.Payment != nil {
			srv.planID = params.Config.Payment.PlanID
		}
		if params.Config.Sites != nil {
			srv.sitesBaseURL = strings.TrimRight(params.Config.Sites.BaseURL, "/")
		}
	}
	if srv.activationCfg.LeaseDuration <= 0 {
		srv.activationCfg.LeaseDuration = defaultLeaseDuration
	}
	if srv.activationCfg.RetryBackoff <= 0 {
		srv.activationCfg.RetryBackoff = defaultRetryBackoff
	}
	if srv.activationCfg.StorageRetries < 0 {
		srv.activationCfg.StorageRetries = 0
	}

	return srv
}

func (srv *activationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Activate transfers site ownership, creates the recurring subscription and issues the site link.
// Redelivered events for a finished transaction return the recorded outcome unchanged.
func (srv *activationService) Activate(ctx context.Context, event *entity.PaymentEvent) (*usecase.ActivationResult, error) {
	if err := srv.validate.Struct(event); err != nil {
		return nil, firstValidationError(err)
	}

	siteID, err := uuid.Parse(event.SiteID)
	if err != nil {
		return nil, domainerrors.NewValidationError("site_id", "must be a UUID")
	}

	log := srv.log(ctx).With(slog.String("transactionID", event.TransactionID), slog.String("siteID", siteID.String()))

	activation, duplicate, err := srv.claim(ctx, event, siteID)
	if err != nil {
		return nil, err
	}
	if duplicate {
		log.Info("Duplicate payment event ignored", slog.String("status", string(activation.Status)))
		srv.notifyUnsent(ctx, log, activation)

		return srv.result(activation, true), nil
	}

	log.Info("Activation started", slog.Int("attempt", activation.Attempts))

	customer, err := srv.process(ctx, log, activation)
	if err != nil {
		log.Error("Activation interrupted, will resume on redelivery", slog.Any("error", err))

		return nil, err
	}

	if err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		return srv.activationRepo.SaveProgress(ctx, activation)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save activation outcome")
	}

	if welcomes(activation.Status) {
		srv.notify(ctx, log, activation, customer)
	}

	log.Info("Activation finished", slog.String("status", string(activation.Status)), slog.String("reason", activation.FailureReason))

	return srv.result(activation, false), nil
}

// claim records the transaction or takes over an expired lease of an unfinished one.
func (srv *activationService) claim(ctx context.Context, event *entity.PaymentEvent, siteID uuid.UUID) (*entity.Activation, bool, error) {
	now := srv.now()
	lockedUntil := now.Add(srv.activationCfg.LeaseDuration)

	activation := &entity.Activation{
		ID:                 uuid.New(),
		TransactionID:      event.TransactionID,
		SiteID:             siteID,
		CustomerEmail:      strings.ToLower(strings.TrimSpace(event.CustomerEmail)),
		CustomerName:       event.CustomerName,
		PaymentMethodToken: event.PaymentMethodToken,
		Amount:             event.Amount,
		Currency:           strings.ToUpper(event.Currency),
		Status:             entity.ActivationStatusProcessing,
		Attempts:           1,
		LockedUntil:        &lockedUntil,
	}

	err := srv.activationRepo.Create(ctx, activation)
	if err == nil {
		return activation, false, nil
	}
	if !errors.Is(err, repository.ErrDuplicateActivation) {
		return nil, false, errors.Wrap(err, "failed to record activation")
	}

	existing, err := srv.activationRepo.FindByTransactionID(ctx, event.TransactionID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load recorded activation")
	}

	if existing.Status.IsTerminal() {
		return existing, true, nil
	}

	acquired, err := srv.activationRepo.AcquireLease(ctx, existing.ID, now, lockedUntil)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to acquire activation lease")
	}
	if !acquired {
		return nil, false, domainerrors.ErrActivationInProgress
	}

	existing.Attempts++
	existing.LockedUntil = &lockedUntil

	return existing, false, nil
}

// process runs the pipeline steps, recording permanent outcomes on the activation.
// A returned error leaves the activation processing for the next delivery.
// Ownership is taken before the customer is resolved, so a lost race leaves no account behind.
func (srv *activationService) process(ctx context.Context, log *slog.Logger, activation *entity.Activation) (*entity.Customer, error) {
	site, err := srv.loadSite(ctx, activation.SiteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		srv.finish(activation, entity.ActivationStatusFailed, entity.ActivationReasonSiteNotFound)

		return nil, nil
	}
	if site.Status == entity.SiteStatusOwned && site.OwnershipTxID != activation.TransactionID {
		log.Warn("Site already owned by another transaction", slog.String("ownerTx", site.OwnershipTxID))
		srv.finish(activation, entity.ActivationStatusFailed, entity.ActivationReasonOwnershipConflict)

		return nil, nil
	}

	owned, err := srv.transferOwnership(ctx, site, activation.TransactionID)
	if err != nil {
		return nil, err
	}
	if !owned {
		log.Warn("Lost site ownership race to another transaction")
		srv.finish(activation, entity.ActivationStatusFailed, entity.ActivationReasonOwnershipConflict)

		return nil, nil
	}

	customer, err := srv.ensureCustomer(ctx, log, activation)
	if err != nil {
		return nil, err
	}
	activation.CustomerID = &customer.ID

	if err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		return srv.siteRepo.AssignOwner(ctx, site.ID, activation.TransactionID, customer.ID)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to assign site owner")
	}

	rejection, err := srv.ensureSubscription(ctx, log, activation, customer)
	if err != nil {
		return nil, err
	}

	link, err := srv.shortLinks.Issue(ctx, srv.siteURL(site), siteLinkType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue site link")
	}
	activation.ShortLinkToken = link.Token

	if rejection != nil {
		srv.finish(activation, entity.ActivationStatusBillingFailed, entity.ActivationReasonPaymentRejected+": "+rejection.Code)

		return customer, nil
	}

	srv.finish(activation, entity.ActivationStatusSucceeded, "")

	return customer, nil
}

// welcomes reports whether an activation that ended in status owns the site and greets the customer.
func welcomes(status entity.ActivationStatus) bool {
	return status == entity.ActivationStatusSucceeded || status == entity.ActivationStatusBillingFailed
}

func (srv *activationService) finish(activation *entity.Activation, status entity.ActivationStatus, reason string) {
	completedAt := srv.now()
	activation.Status = status
	activation.FailureReason = reason
	activation.CompletedAt = &completedAt
	activation.LockedUntil = nil
}

// loadSite returns nil without error when the site does not exist.
func (srv *activationService) loadSite(ctx context.Context, siteID uuid.UUID) (*entity.Site, error) {
	var site *entity.Site

	err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		found, err := srv.siteRepo.FindByID(ctx, siteID)
		if err != nil {
			if errors.Is(err, repository.ErrSiteNotFound) {
				return nil
			}

			return err
		}
		site = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load site")
	}

	return site, nil
}

// ensureCustomer inserts the customer if the email is new and returns the stored row.
// A new row is stamped with the transaction and an unusable password; the real temporary
// password is issued with the welcome, so a resumed run can still deliver credentials.
func (srv *activationService) ensureCustomer(ctx context.Context, log *slog.Logger, activation *entity.Activation) (*entity.Customer, error) {
	placeholder, err := srv.newPasswordHash()
	if err != nil {
		return nil, err
	}

	var (
		customer *entity.Customer
		created  bool
	)

	err = srv.withStorageRetry(ctx, func(ctx context.Context) error {
		var err error
		customer, created, err = srv.customerRepo.FindOrCreate(ctx, &entity.Customer{
			ID:           uuid.New(),
			Email:        activation.CustomerEmail,
			DisplayName:  activation.CustomerName,
			PasswordHash: placeholder,
			CreatedByTx:  activation.TransactionID,
		})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create customer")
	}

	log.Info("Customer resolved", slog.String("customerID", customer.ID.String()), slog.Bool("created", created))

	return customer, nil
}

// newPasswordHash hashes a fresh random password that is never shown to anyone.
func (srv *activationService) newPasswordHash() (string, error) {
	password, err := generateToken(tempPasswordLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate password")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// issueTempPassword replaces the customer's password with a new temporary one and returns it.
func (srv *activationService) issueTempPassword(ctx context.Context, customerID uuid.UUID) (string, error) {
	tempPassword, err := generateToken(tempPasswordLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate temporary password")
	}

	hash, err := srv.hasher.Hash(tempPassword)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash temporary password")
	}

	if err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		return srv.customerRepo.SetPasswordHash(ctx, customerID, hash)
	}); err != nil {
		return "", errors.Wrap(err, "failed to store temporary password")
	}

	return tempPassword, nil
}

// transferOwnership moves the site to owned by txID. It reports false when another transaction owns it.
func (srv *activationService) transferOwnership(ctx context.Context, site *entity.Site, txID string) (bool, error) {
	if site.Status == entity.SiteStatusOwned {
		return site.OwnershipTxID == txID, nil
	}

	owned := false

	err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		err := srv.siteRepo.TransferOwnership(ctx, site.ID, txID, srv.now())
		if err == nil {
			owned = true

			return nil
		}
		if !errors.Is(err, repository.ErrStatusConflict) {
			return err
		}

		current, err := srv.siteRepo.FindByID(ctx, site.ID)
		if err != nil {
			return err
		}
		owned = current.OwnershipTxID == txID

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to transfer site ownership")
	}

	return owned, nil
}

// ensureSubscription claims the single subscription of the site and starts billing once.
// A provider rejection is returned as a value; the subscription is recorded as failed.
func (srv *activationService) ensureSubscription(ctx context.Context, log *slog.Logger, activation *entity.Activation, customer *entity.Customer) (*service.PaymentRejectedError, error) {
	var subscription *entity.Subscription

	err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		stored, _, err := srv.subscriptionRepo.Claim(ctx, &entity.Subscription{
			ID:         uuid.New(),
			SiteID:     activation.SiteID,
			CustomerID: customer.ID,
			Status:     entity.SubscriptionStatusPending,
		})
		subscription = stored

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim subscription")
	}

	activation.SubscriptionID = &subscription.ID

	if subscription.Status == entity.SubscriptionStatusActive {
		log.Info("Subscription already active, skipping billing", slog.String("subscriptionID", subscription.ID.String()))

		return nil, nil
	}

	providerSub, err := srv.gateway.CreateRecurringSubscription(ctx, &service.RecurringSubscriptionRequest{
		IdempotencyKey:     activation.SiteID.String(),
		CustomerEmail:      customer.Email,
		CustomerName:       activation.CustomerName,
		PaymentMethodToken: activation.PaymentMethodToken,
		PlanID:             srv.planID,
		Amount:             activation.Amount,
		Currency:           activation.Currency,
		Metadata: map[string]string{
			"site_id":        activation.SiteID.String(),
			"transaction_id": activation.TransactionID,
		},
	})
	if err != nil {
		var rejected *service.PaymentRejectedError
		if !errors.As(err, &rejected) {
			return nil, errors.Wrap(err, "failed to create recurring subscription")
		}

		log.Warn("Payment provider rejected subscription", slog.String("code", rejected.Code), slog.String("reason", rejected.Reason))

		if err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
			return srv.subscriptionRepo.MarkFailed(ctx, subscription.ID, rejected.Reason)
		}); err != nil && !errors.Is(err, repository.ErrStatusConflict) {
			return nil, errors.Wrap(err, "failed to record subscription failure")
		}

		return rejected, nil
	}

	if err := srv.withStorageRetry(ctx, func(ctx context.Context) error {
		return srv.subscriptionRepo.MarkActive(ctx, subscription.ID, providerSub.ID, providerSub.NextChargeAt)
	}); err != nil && !errors.Is(err, repository.ErrStatusConflict) {
		return nil, errors.Wrap(err, "failed to activate subscription")
	}

	return nil, nil
}

// notifyUnsent sends the welcome of a finished activation whose run stopped before notifying.
func (srv *activationService) notifyUnsent(ctx context.Context, log *slog.Logger, activation *entity.Activation) {
	if !welcomes(activation.Status) || activation.NotifiedAt != nil || activation.CustomerID == nil {
		return
	}

	customer, err := srv.customerRepo.FindByID(ctx, *activation.CustomerID)
	if err != nil {
		log.Warn("Failed to load customer for pending welcome", slog.Any("error", err))

		return
	}

	srv.notify(ctx, log, activation, customer)
}

// notify publishes the welcome event at most once per activation. Failures are only logged.
// Customers created by this transaction get a fresh temporary password with the welcome.
func (srv *activationService) notify(ctx context.Context, log *slog.Logger, activation *entity.Activation, customer *entity.Customer) {
	first, err := srv.activationRepo.MarkNotified(ctx, activation.ID, srv.now())
	if err != nil {
		log.Warn("Failed to stamp welcome notification", slog.Any("error", err))

		return
	}
	if !first {
		return
	}

	payload := service.WelcomePayload{
		ActivationID:  activation.ID.String(),
		Email:         activation.CustomerEmail,
		SiteID:        activation.SiteID.String(),
		BillingFailed: activation.Status == entity.ActivationStatusBillingFailed,
	}
	if activation.CustomerID != nil {
		payload.CustomerID = activation.CustomerID.String()
	}
	if activation.ShortLinkToken != "" {
		payload.ShortURL = srv.shortLinks.PublicURL(activation.ShortLinkToken)
	}

	if customer != nil && customer.CreatedByTx == activation.TransactionID {
		tempPassword, err := srv.issueTempPassword(ctx, customer.ID)
		if err != nil {
			log.Error("Failed to issue temporary password, welcome sent without credentials", slog.Any("error", err))
		}
		payload.TempPassword = tempPassword
	}

	event, err := service.NewEvent(service.EventCustomerWelcome, deliverycontext.GetRequestIDFromContext(ctx), payload)
	if err == nil {
		err = srv.publisher.Publish(ctx, event)
	}
	if err != nil {
		log.Warn("Failed to publish welcome notification", slog.Any("error", err))
	}
}

// withStorageRetry retries fn while it fails with a transient storage error.
func (srv *activationService) withStorageRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(srv.activationCfg.StorageRetries), retry.NewConstant(srv.activationCfg.RetryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, repository.ErrTransientStorage) {
			return retry.RetryableError(err)
		}

		return err
	})
}

func (srv *activationService) siteURL(site *entity.Site) string {
	return srv.sitesBaseURL + "/" + site.Slug
}

func (srv *activationService) result(activation *entity.Activation, duplicate bool) *usecase.ActivationResult {
	result := &usecase.ActivationResult{Activation: activation, Duplicate: duplicate}
	if activation.ShortLinkToken != "" {
		result.ShortURL = srv.shortLinks.PublicURL(activation.ShortLinkToken)
	}

	return result
}

// GetActivation retrieves the activation of a transaction.
func (srv *activationService) GetActivation(ctx context.Context, transactionID string) (*entity.Activation, error) {
	activation, err := srv.activationRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return nil, domainerrors.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to find activation")
	}

	return activation, nil
}

// ListActivations returns activations in the given statuses, newest first.
func (srv *activationService) ListActivations(ctx context.Context, statuses []entity.ActivationStatus, limit int) ([]*entity.Activation, error) {
	for _, status := range statuses {
		switch status {
		case entity.ActivationStatusProcessing, entity.ActivationStatusSucceeded,
			entity.ActivationStatusFailed, entity.ActivationStatusBillingFailed:
		default:
			return nil, domainerrors.NewValidationError("status", "unknown activation status "+string(status))
		}
	}

	if limit <= 0 {
		limit = defaultActivationList
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	activations, err := srv.activationRepo.ListByStatus(ctx, statuses, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activations")
	}

	return activations, nil
}
