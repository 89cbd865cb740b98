package impl

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"
	"leadgrid/internal/domain/service"

	"github.com/google/uuid"
)

// The fakes below keep their rows behind a mutex and honour the same conditional
// updates as the postgres repositories, so concurrent callers race for real.

type memoryZoneRepository struct {
	mu    sync.Mutex
	zones map[uuid.UUID]*entity.Zone
	// edges records every status change so tests can check it against the zone lifecycle.
	edges []zoneEdge
}

type zoneEdge struct {
	from, to entity.ZoneStatus
}

func newMemoryZoneRepository(zones ...*entity.Zone) *memoryZoneRepository {
	repo := &memoryZoneRepository{zones: make(map[uuid.UUID]*entity.Zone)}
	for _, zone := range zones {
		repo.zones[zone.ID] = zone
	}

	return repo
}

func (r *memoryZoneRepository) CreateBatch(_ context.Context, zones []*entity.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, zone := range zones {
		r.zones[zone.ID] = zone
	}

	return nil
}

func (r *memoryZoneRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zone, ok := r.zones[id]
	if !ok {
		return nil, repository.ErrZoneNotFound
	}
	copied := *zone

	return &copied, nil
}

func (r *memoryZoneRepository) ListByStrategy(_ context.Context, strategyID uuid.UUID) ([]*entity.Zone, error) {
	return r.list(func(z *entity.Zone) bool { return z.StrategyID == strategyID }), nil
}

func (r *memoryZoneRepository) ListByStrategyAndStatus(_ context.Context, strategyID uuid.UUID, status entity.ZoneStatus) ([]*entity.Zone, error) {
	return r.list(func(z *entity.Zone) bool { return z.StrategyID == strategyID && z.Status == status }), nil
}

func (r *memoryZoneRepository) list(keep func(*entity.Zone) bool) []*entity.Zone {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Zone, 0)
	for _, zone := range r.zones {
		if keep(zone) {
			copied := *zone
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })

	return out
}

func (r *memoryZoneRepository) ClaimForScrape(_ context.Context, id uuid.UUID, startedAt time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zone, ok := r.zones[id]
	if !ok || zone.Status != entity.ZoneStatusPending {
		return 0, repository.ErrStatusConflict
	}
	r.move(zone, entity.ZoneStatusInProgress)
	zone.Attempts++
	zone.ScrapeStartedAt = &startedAt
	zone.LastError = ""

	return zone.Attempts, nil
}

func (r *memoryZoneRepository) MarkCompleted(_ context.Context, id uuid.UUID, attempt int, summary *entity.ZoneSummary, scrapedAt time.Time) error {
	return r.transition(id, entity.ZoneStatusInProgress, attempt, func(z *entity.Zone) {
		r.move(z, entity.ZoneStatusCompleted)
		z.Summary = summary
		z.LastScrapedAt = &scrapedAt
		z.ScrapeStartedAt = nil
		z.LastError = ""
	})
}

func (r *memoryZoneRepository) MarkFailed(_ context.Context, id uuid.UUID, attempt int, reason string) error {
	return r.transition(id, entity.ZoneStatusInProgress, attempt, func(z *entity.Zone) {
		r.move(z, entity.ZoneStatusFailed)
		z.ScrapeStartedAt = nil
		z.LastError = reason
	})
}

func (r *memoryZoneRepository) ResetFailed(_ context.Context, id uuid.UUID) error {
	return r.transition(id, entity.ZoneStatusFailed, 0, func(z *entity.Zone) {
		r.move(z, entity.ZoneStatusPending)
	})
}

func (r *memoryZoneRepository) ReleaseStale(_ context.Context, startedBefore time.Time) ([]*entity.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	released := make([]*entity.Zone, 0)
	for _, zone := range r.zones {
		if zone.Status == entity.ZoneStatusInProgress && zone.ScrapeStartedAt != nil && zone.ScrapeStartedAt.Before(startedBefore) {
			r.move(zone, entity.ZoneStatusPending)
			zone.ScrapeStartedAt = nil
			zone.LastError = "released by stale sweep"
			copied := *zone
			released = append(released, &copied)
		}
	}

	return released, nil
}

// transition applies a change when the zone is in from and, for a non-zero attempt,
// still held by that claim.
func (r *memoryZoneRepository) transition(id uuid.UUID, from entity.ZoneStatus, attempt int, apply func(*entity.Zone)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	zone, ok := r.zones[id]
	if !ok || zone.Status != from || (attempt != 0 && zone.Attempts != attempt) {
		return repository.ErrStatusConflict
	}
	apply(zone)

	return nil
}

// move must be called with r.mu held.
func (r *memoryZoneRepository) move(zone *entity.Zone, to entity.ZoneStatus) {
	r.edges = append(r.edges, zoneEdge{from: zone.Status, to: to})
	zone.Status = to
}

// illegalEdges returns every recorded change the zone lifecycle does not allow.
func (r *memoryZoneRepository) illegalEdges() []zoneEdge {
	r.mu.Lock()
	defer r.mu.Unlock()

	illegal := make([]zoneEdge, 0)
	for _, edge := range r.edges {
		if !edge.from.CanTransitionTo(edge.to) {
			illegal = append(illegal, edge)
		}
	}

	return illegal
}

type memoryBusinessRepository struct {
	mu         sync.Mutex
	byExternal map[string]*entity.Business
}

func newMemoryBusinessRepository() *memoryBusinessRepository {
	return &memoryBusinessRepository{byExternal: make(map[string]*entity.Business)}
}

func (r *memoryBusinessRepository) FindByExternalIDs(_ context.Context, externalIDs []string) (map[string]*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make(map[string]*entity.Business, len(externalIDs))
	for _, id := range externalIDs {
		if business, ok := r.byExternal[id]; ok {
			copied := *business
			found[id] = &copied
		}
	}

	return found, nil
}

func (r *memoryBusinessRepository) UpsertBatch(_ context.Context, businesses []*entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, business := range businesses {
		if existing, ok := r.byExternal[business.ExternalID]; ok {
			business.ID = existing.ID
		}
		copied := *business
		r.byExternal[business.ExternalID] = &copied
	}

	return nil
}

func (r *memoryBusinessRepository) Search(context.Context, repository.BusinessQuery) ([]*entity.Business, int64, error) {
	return nil, 0, nil
}

type memoryDraftRepository struct {
	mu     sync.Mutex
	drafts []*entity.DraftCampaign
}

func (r *memoryDraftRepository) Create(_ context.Context, draft *entity.DraftCampaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts = append(r.drafts, draft)

	return nil
}

func (r *memoryDraftRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.DraftCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, draft := range r.drafts {
		if draft.ID == id {
			return draft, nil
		}
	}

	return nil, repository.ErrDraftNotFound
}

func (r *memoryDraftRepository) ListByStrategy(_ context.Context, strategyID uuid.UUID) ([]*entity.DraftCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.DraftCampaign, 0)
	for _, draft := range r.drafts {
		if draft.StrategyID == strategyID {
			out = append(out, draft)
		}
	}

	return out, nil
}

func (r *memoryDraftRepository) Review(_ context.Context, id uuid.UUID, status entity.DraftStatus, reviewerID uuid.UUID, reviewedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, draft := range r.drafts {
		if draft.ID == id && draft.Status == entity.DraftStatusPendingReview {
			draft.Status = status
			draft.ReviewedBy = &reviewerID
			draft.ReviewedAt = &reviewedAt

			return nil
		}
	}

	return repository.ErrStatusConflict
}

// memoryTxManager runs the callback directly against the shared fakes.
type memoryTxManager struct {
	zones      *memoryZoneRepository
	businesses *memoryBusinessRepository
	drafts     *memoryDraftRepository
}

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memoryTxManager) NewStrategyRepository() repository.StrategyRepository { return nil }

func (m *memoryTxManager) NewZoneRepository() repository.ZoneRepository { return m.zones }

func (m *memoryTxManager) NewBusinessRepository() repository.BusinessRepository { return m.businesses }

func (m *memoryTxManager) NewDraftCampaignRepository() repository.DraftCampaignRepository {
	return m.drafts
}

type memoryShortLinkRepository struct {
	mu    sync.Mutex
	links []*entity.ShortLink
}

func (r *memoryShortLinkRepository) InsertIfAbsent(_ context.Context, link *entity.ShortLink) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.links {
		if existing.Token == link.Token {
			return false, repository.ErrTokenCollision
		}
		if existing.Active && existing.Destination == link.Destination && existing.LinkType == link.LinkType {
			return false, nil
		}
	}
	copied := *link
	r.links = append(r.links, &copied)

	return true, nil
}

func (r *memoryShortLinkRepository) FindActive(_ context.Context, destination, linkType string) (*entity.ShortLink, error) {
	return r.find(func(l *entity.ShortLink) bool {
		return l.Active && l.Destination == destination && l.LinkType == linkType
	})
}

func (r *memoryShortLinkRepository) FindByToken(_ context.Context, token string) (*entity.ShortLink, error) {
	return r.find(func(l *entity.ShortLink) bool { return l.Token == token })
}

func (r *memoryShortLinkRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.ShortLink, error) {
	return r.find(func(l *entity.ShortLink) bool { return l.ID == id })
}

func (r *memoryShortLinkRepository) find(match func(*entity.ShortLink) bool) (*entity.ShortLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range r.links {
		if match(link) {
			copied := *link

			return &copied, nil
		}
	}

	return nil, repository.ErrShortLinkNotFound
}

func (r *memoryShortLinkRepository) IncrementClicks(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range r.links {
		if link.ID == id {
			link.Clicks++

			return nil
		}
	}

	return repository.ErrShortLinkNotFound
}

func (r *memoryShortLinkRepository) Deactivate(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range r.links {
		if link.ID == id && link.Active {
			link.Active = false
			link.DeactivatedAt = &at

			return nil
		}
	}

	return repository.ErrShortLinkNotFound
}

func (r *memoryShortLinkRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.links)
}

type memoryActivationRepository struct {
	mu          sync.Mutex
	activations map[string]*entity.Activation
}

func newMemoryActivationRepository() *memoryActivationRepository {
	return &memoryActivationRepository{activations: make(map[string]*entity.Activation)}
}

func (r *memoryActivationRepository) Create(_ context.Context, activation *entity.Activation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.activations[activation.TransactionID]; ok {
		return repository.ErrDuplicateActivation
	}
	copied := *activation
	r.activations[activation.TransactionID] = &copied

	return nil
}

func (r *memoryActivationRepository) FindByTransactionID(_ context.Context, txID string) (*entity.Activation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activation, ok := r.activations[txID]
	if !ok {
		return nil, repository.ErrActivationNotFound
	}
	copied := *activation

	return &copied, nil
}

func (r *memoryActivationRepository) AcquireLease(_ context.Context, id uuid.UUID, now, lockedUntil time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, activation := range r.activations {
		if activation.ID != id {
			continue
		}
		if activation.Status != entity.ActivationStatusProcessing ||
			(activation.LockedUntil != nil && activation.LockedUntil.After(now)) {
			return false, nil
		}
		activation.LockedUntil = &lockedUntil
		activation.Attempts++

		return true, nil
	}

	return false, nil
}

func (r *memoryActivationRepository) SaveProgress(_ context.Context, activation *entity.Activation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *activation
	r.activations[activation.TransactionID] = &copied

	return nil
}

func (r *memoryActivationRepository) MarkNotified(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, activation := range r.activations {
		if activation.ID == id {
			if activation.NotifiedAt != nil {
				return false, nil
			}
			activation.NotifiedAt = &at

			return true, nil
		}
	}

	return false, repository.ErrActivationNotFound
}

// expireLease backdates the lease of a transaction, as if its worker had died.
func (r *memoryActivationRepository) expireLease(txID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expired := time.Now().UTC().Add(-time.Second)
	r.activations[txID].LockedUntil = &expired
}

func (r *memoryActivationRepository) ListByStatus(context.Context, []entity.ActivationStatus, int) ([]*entity.Activation, error) {
	return nil, nil
}

type memorySiteRepository struct {
	mu    sync.Mutex
	sites map[uuid.UUID]*entity.Site
}

func newMemorySiteRepository(sites ...*entity.Site) *memorySiteRepository {
	repo := &memorySiteRepository{sites: make(map[uuid.UUID]*entity.Site)}
	for _, site := range sites {
		repo.sites[site.ID] = site
	}

	return repo
}

func (r *memorySiteRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	site, ok := r.sites[id]
	if !ok {
		return nil, repository.ErrSiteNotFound
	}
	copied := *site

	return &copied, nil
}

func (r *memorySiteRepository) TransferOwnership(_ context.Context, siteID uuid.UUID, txID string, ownedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	site, ok := r.sites[siteID]
	if !ok || site.Status != entity.SiteStatusPreview {
		return repository.ErrStatusConflict
	}
	site.Status = entity.SiteStatusOwned
	site.OwnershipTxID = txID
	site.OwnedAt = &ownedAt

	return nil
}

func (r *memorySiteRepository) AssignOwner(_ context.Context, siteID uuid.UUID, txID string, customerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	site, ok := r.sites[siteID]
	if !ok || site.Status != entity.SiteStatusOwned || site.OwnershipTxID != txID {
		return repository.ErrStatusConflict
	}
	site.OwnerCustomerID = &customerID

	return nil
}

type memoryCustomerRepository struct {
	mu      sync.Mutex
	byEmail map[string]*entity.Customer
}

func newMemoryCustomerRepository() *memoryCustomerRepository {
	return &memoryCustomerRepository{byEmail: make(map[string]*entity.Customer)}
}

func (r *memoryCustomerRepository) FindOrCreate(_ context.Context, customer *entity.Customer) (*entity.Customer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byEmail[customer.Email]; ok {
		copied := *existing

		return &copied, false, nil
	}
	stored := *customer
	r.byEmail[customer.Email] = &stored

	return customer, true, nil
}

func (r *memoryCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.byEmail {
		if customer.ID == id {
			copied := *customer

			return &copied, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *memoryCustomerRepository) SetPasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.byEmail {
		if customer.ID == id {
			customer.PasswordHash = passwordHash

			return nil
		}
	}

	return repository.ErrCustomerNotFound
}

func (r *memoryCustomerRepository) byEmailAddress(email string) *entity.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.byEmail[email]
	if !ok {
		return nil
	}
	copied := *customer

	return &copied
}

func (r *memoryCustomerRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byEmail)
}

type memorySubscriptionRepository struct {
	mu     sync.Mutex
	bySite map[uuid.UUID]*entity.Subscription
}

func newMemorySubscriptionRepository() *memorySubscriptionRepository {
	return &memorySubscriptionRepository{bySite: make(map[uuid.UUID]*entity.Subscription)}
}

func (r *memorySubscriptionRepository) Claim(_ context.Context, sub *entity.Subscription) (*entity.Subscription, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.bySite[sub.SiteID]; ok {
		copied := *existing

		return &copied, false, nil
	}
	copied := *sub
	r.bySite[sub.SiteID] = &copied

	return sub, true, nil
}

func (r *memorySubscriptionRepository) FindBySite(_ context.Context, siteID uuid.UUID) (*entity.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.bySite[siteID]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}
	copied := *sub

	return &copied, nil
}

func (r *memorySubscriptionRepository) MarkActive(_ context.Context, id uuid.UUID, providerSubscriptionID string, nextChargeAt *time.Time) error {
	return r.update(id, func(s *entity.Subscription) bool {
		if s.Status == entity.SubscriptionStatusActive {
			return false
		}
		s.Status = entity.SubscriptionStatusActive
		s.ProviderSubscriptionID = providerSubscriptionID
		s.NextChargeAt = nextChargeAt

		return true
	})
}

func (r *memorySubscriptionRepository) MarkFailed(_ context.Context, id uuid.UUID, reason string) error {
	return r.update(id, func(s *entity.Subscription) bool {
		if s.Status != entity.SubscriptionStatusPending {
			return false
		}
		s.Status = entity.SubscriptionStatusFailed
		s.FailureReason = reason

		return true
	})
}

func (r *memorySubscriptionRepository) update(id uuid.UUID, apply func(*entity.Subscription) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sub := range r.bySite {
		if sub.ID == id {
			if !apply(sub) {
				return repository.ErrStatusConflict
			}

			return nil
		}
	}

	return repository.ErrSubscriptionNotFound
}

func (r *memorySubscriptionRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.bySite)
}

// countingGateway creates one provider subscription per idempotency key.
type countingGateway struct {
	mu       sync.Mutex
	calls    int
	byKey    map[string]*service.ProviderSubscription
	rejectAs *service.PaymentRejectedError
	// failNext is returned once by the next call.
	failNext error
}

func newCountingGateway() *countingGateway {
	return &countingGateway{byKey: make(map[string]*service.ProviderSubscription)}
}

func (g *countingGateway) CreateRecurringSubscription(_ context.Context, req *service.RecurringSubscriptionRequest) (*service.ProviderSubscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	if g.failNext != nil {
		err := g.failNext
		g.failNext = nil

		return nil, err
	}
	if g.rejectAs != nil {
		return nil, g.rejectAs
	}
	if sub, ok := g.byKey[req.IdempotencyKey]; ok {
		return sub, nil
	}
	sub := &service.ProviderSubscription{ID: "sub_" + req.IdempotencyKey[:8], Status: "active"}
	g.byKey[req.IdempotencyKey] = sub

	return sub, nil
}

func (g *countingGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.calls
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) ofType(eventType service.EventType) []*service.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*service.Event, 0)
	for _, event := range p.events {
		if event.Type == eventType {
			out = append(out, event)
		}
	}

	return out
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

// memoryReportCache is an in-process ReportCache. TTLs are ignored.
type memoryReportCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryReportCache() *memoryReportCache {
	return &memoryReportCache{entries: make(map[string][]byte)}
}

func (c *memoryReportCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.entries[key]
	if !ok {
		return nil, service.ErrCacheMiss
	}

	return data, nil
}

func (c *memoryReportCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value

	return nil
}

func (c *memoryReportCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	if data, ok := c.entries[key]; ok {
		parsed, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return 0, err
		}
		n = parsed
	}
	n++
	c.entries[key] = []byte(strconv.FormatInt(n, 10))

	return n, nil
}
