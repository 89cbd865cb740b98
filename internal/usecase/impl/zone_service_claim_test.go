package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"leadgrid/internal/domain/entity"
	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"
	"leadgrid/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedProvider parks every Search call until the test opens that call's gate.
type gatedProvider struct {
	mu      sync.Mutex
	calls   int
	entered chan int
	gates   []chan struct{}
	results []*service.ScrapeResult
}

func newGatedProvider(results ...*service.ScrapeResult) *gatedProvider {
	gates := make([]chan struct{}, len(results))
	for i := range gates {
		gates[i] = make(chan struct{})
	}

	return &gatedProvider{entered: make(chan int, len(results)), gates: gates, results: results}
}

func (p *gatedProvider) Search(ctx context.Context, _ service.ScrapeQuery) (*service.ScrapeResult, error) {
	p.mu.Lock()
	n := p.calls
	p.calls++
	p.mu.Unlock()

	if n >= len(p.results) {
		return nil, service.NewPermanentProviderError(500, errors.New("unexpected search"))
	}

	p.entered <- n
	select {
	case <-p.gates[n]:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return p.results[n], nil
}

func (p *gatedProvider) open(n int) { close(p.gates[n]) }

func (p *gatedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

func newMemoryZoneService(zone *entity.Zone, provider service.ScrapeProvider) (usecase.ZoneUsecase, *memoryZoneRepository, *memoryDraftRepository) {
	zones := newMemoryZoneRepository(zone)
	drafts := &memoryDraftRepository{}
	txManager := &memoryTxManager{zones: zones, businesses: newMemoryBusinessRepository(), drafts: drafts}

	srv := NewZoneService(ZoneServiceParams{
		TxManager: txManager,
		ZoneRepo:  zones,
		Provider:  provider,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return srv, zones, drafts
}

type scrapeOutcome struct {
	result *usecase.ZoneResult
	err    error
}

func TestZoneService_ScrapeZone_ReleasedClaimCannotOverwriteNewClaim(t *testing.T) {
	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	zone.Attempts = 0

	provider := newGatedProvider(
		&service.ScrapeResult{Businesses: []service.RawBusiness{unqualifiedRecord("old-1"), unqualifiedRecord("old-2")}},
		&service.ScrapeResult{Businesses: []service.RawBusiness{qualifiedRecord("new-1")}},
	)
	srv, zones, drafts := newMemoryZoneService(zone, provider)

	first := make(chan scrapeOutcome, 1)
	go func() {
		result, err := srv.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
		first <- scrapeOutcome{result, err}
	}()
	require.Equal(t, 0, <-provider.entered)

	released, err := zones.ReleaseStale(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, released, 1)

	second := make(chan scrapeOutcome, 1)
	go func() {
		result, err := srv.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
		second <- scrapeOutcome{result, err}
	}()
	require.Equal(t, 1, <-provider.entered)

	// The released scrape finishes while the newer claim is still running.
	provider.open(0)
	stale := <-first
	assert.Nil(t, stale.result)
	assert.True(t, errors.Is(stale.err, domainerrors.ErrZoneBusy), "got %v", stale.err)

	current, err := zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusInProgress, current.Status)
	assert.Equal(t, 2, current.Attempts)
	assert.Nil(t, current.Summary)

	provider.open(1)
	fresh := <-second
	require.NoError(t, fresh.err)
	assert.Equal(t, 1, fresh.result.Summary.Total)
	assert.NotNil(t, fresh.result.DraftID)

	final, err := zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusCompleted, final.Status)
	require.NotNil(t, final.Summary)
	assert.Equal(t, 1, final.Summary.Total)
	assert.Equal(t, 1, final.Summary.Qualified)

	campaigns, err := drafts.ListByStrategy(ctx, zone.StrategyID)
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Empty(t, zones.illegalEdges())
}

func TestZoneService_ScrapeZone_ReleasedClaimCannotFailNewClaim(t *testing.T) {
	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	zone.Attempts = 0

	provider := newGatedProvider(
		nil,
		&service.ScrapeResult{Businesses: []service.RawBusiness{unqualifiedRecord("ext-1")}},
	)
	// The first search fails permanently once its gate opens.
	failing := &failAfterGate{gatedProvider: provider}
	srv, zones, _ := newMemoryZoneService(zone, failing)

	first := make(chan scrapeOutcome, 1)
	go func() {
		result, err := srv.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
		first <- scrapeOutcome{result, err}
	}()
	require.Equal(t, 0, <-provider.entered)

	_, err := zones.ReleaseStale(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	second := make(chan scrapeOutcome, 1)
	go func() {
		result, err := srv.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
		second <- scrapeOutcome{result, err}
	}()
	require.Equal(t, 1, <-provider.entered)

	provider.open(0)
	stale := <-first
	assert.True(t, errors.Is(stale.err, domainerrors.ErrZoneFailed), "got %v", stale.err)

	current, err := zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusInProgress, current.Status)
	assert.Empty(t, current.LastError)

	provider.open(1)
	fresh := <-second
	require.NoError(t, fresh.err)
	assert.Equal(t, entity.ZoneStatusCompleted, fresh.result.Zone.Status)
	assert.Empty(t, zones.illegalEdges())
}

// failAfterGate turns a nil gated result into a permanent provider error.
type failAfterGate struct {
	*gatedProvider
}

func (p *failAfterGate) Search(ctx context.Context, query service.ScrapeQuery) (*service.ScrapeResult, error) {
	result, err := p.gatedProvider.Search(ctx, query)
	if err == nil && result == nil {
		return nil, service.NewPermanentProviderError(400, errors.New("bad query"))
	}

	return result, err
}

func TestZoneService_ScrapeZone_ConcurrentRequestsScrapeOnce(t *testing.T) {
	const callers = 8

	ctx := context.Background()
	zone := newTestZone(entity.ZoneStatusPending)
	zone.Attempts = 0

	provider := newGatedProvider(&service.ScrapeResult{Businesses: []service.RawBusiness{qualifiedRecord("ext-1")}})
	srv, zones, drafts := newMemoryZoneService(zone, provider)

	outcomes := make(chan scrapeOutcome, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := srv.ScrapeZone(ctx, zone.ID, entity.ScrapeModeDraft)
			outcomes <- scrapeOutcome{result, err}
		}()
	}
	close(start)

	// Every loser returns while the winner is parked inside the provider.
	require.Equal(t, 0, <-provider.entered)
	busy := 0
	for range callers - 1 {
		outcome := <-outcomes
		assert.Nil(t, outcome.result)
		if errors.Is(outcome.err, domainerrors.ErrZoneBusy) {
			busy++
		}
	}
	assert.Equal(t, callers-1, busy)

	provider.open(0)
	wg.Wait()
	winner := <-outcomes
	require.NoError(t, winner.err)
	assert.Equal(t, 1, winner.result.Summary.Total)

	assert.Equal(t, 1, provider.callCount())

	final, err := zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusCompleted, final.Status)
	assert.Equal(t, 1, final.Attempts)

	campaigns, err := drafts.ListByStrategy(ctx, zone.StrategyID)
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Empty(t, zones.illegalEdges())
}

func TestZoneStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to entity.ZoneStatus
		want     bool
	}{
		{entity.ZoneStatusPending, entity.ZoneStatusInProgress, true},
		{entity.ZoneStatusPending, entity.ZoneStatusCompleted, false},
		{entity.ZoneStatusInProgress, entity.ZoneStatusCompleted, true},
		{entity.ZoneStatusInProgress, entity.ZoneStatusFailed, true},
		{entity.ZoneStatusInProgress, entity.ZoneStatusPending, true},
		{entity.ZoneStatusFailed, entity.ZoneStatusPending, true},
		{entity.ZoneStatusFailed, entity.ZoneStatusInProgress, false},
		{entity.ZoneStatusCompleted, entity.ZoneStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
