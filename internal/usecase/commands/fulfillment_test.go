//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
	"linkpay/internal/infra"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/pkg/errs"
	"linkpay/internal/usecase/commands"
)

// fakePendingStore mirrors the conditional-update semantics of the real
// repository: ClaimProcessing succeeds for exactly one caller per pending
// record, under a mutex instead of a database row lock.
type fakePendingStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*pendingRow
}

type pendingRow struct {
	originalURL string
	customAlias *string
	expiryDate  *time.Time
	status      payment.Status
	shortURL    *string
}

func newFakePendingStore() *fakePendingStore {
	return &fakePendingStore{records: make(map[uuid.UUID]*pendingRow)}
}

func (s *fakePendingStore) put(sessionID uuid.UUID, row *pendingRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = row
}

func (s *fakePendingStore) Create(_ context.Context, p *payment.PendingPayment) error {
	s.put(p.SessionID(), &pendingRow{
		originalURL: p.OriginalURL(),
		customAlias: p.CustomAlias(),
		expiryDate:  p.ExpiryDate(),
		status:      p.Status(),
	})
	return nil
}

func (s *fakePendingStore) FindBySessionID(_ context.Context, sessionID uuid.UUID) (*payment.PendingPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.records[sessionID]
	if !ok {
		return nil, infra.WrapRepoErr("pending payment not found", nil, infra.KindNotFound)
	}
	now := time.Now()
	return payment.ReconstructPendingPayment(
		sessionID, "pref-1", row.originalURL, row.customAlias, row.expiryDate,
		1, 990, row.status, row.shortURL, now, now,
	), nil
}

func (s *fakePendingStore) ClaimProcessing(_ context.Context, sessionID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.records[sessionID]
	if !ok || row.status != payment.StatusPending {
		return false, nil
	}
	row.status = payment.StatusProcessing
	return true, nil
}

func (s *fakePendingStore) MarkCompleted(_ context.Context, sessionID uuid.UUID, shortURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.records[sessionID]
	if !ok || row.status != payment.StatusProcessing {
		return infra.WrapRepoErr("pending payment not in processing state", nil, infra.KindNotFound)
	}
	row.status = payment.StatusCompleted
	row.shortURL = &shortURL
	return nil
}

func (s *fakePendingStore) MarkFailed(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.records[sessionID]
	if !ok || row.status != payment.StatusProcessing {
		return infra.WrapRepoErr("pending payment not in processing state", nil, infra.KindNotFound)
	}
	row.status = payment.StatusFailed
	return nil
}

func (s *fakePendingStore) statusOf(sessionID uuid.UUID) payment.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[sessionID].status
}

// fakeURLStore enforces short-code uniqueness like the real unique index.
type fakeURLStore struct {
	mu        sync.Mutex
	byCode    map[string]*shorturl.Url
	createErr error
}

func newFakeURLStore() *fakeURLStore {
	return &fakeURLStore{byCode: make(map[string]*shorturl.Url)}
}

func (s *fakeURLStore) Create(_ context.Context, u *shorturl.Url) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	if _, exists := s.byCode[u.ShortCode()]; exists {
		return infra.WrapRepoErr("short code taken", nil, infra.KindDuplicateKey)
	}
	s.byCode[u.ShortCode()] = u
	return nil
}

func (s *fakeURLStore) FindByShortCode(_ context.Context, shortCode string) (*shorturl.Url, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byCode[shortCode]
	if !ok {
		return nil, infra.WrapRepoErr("url not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (s *fakeURLStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byCode)
}

type fakeEncoder struct{}

func (fakeEncoder) DataURL(content string) (string, error) {
	return "data:image/png;base64," + content, nil
}

func newFulfillment(pending *fakePendingStore, urls *fakeURLStore) *commands.FulfillmentUsecase {
	cfg := config.ShortlinkConfig{
		BaseURL:            "https://sho.rt",
		AllocationAttempts: 5,
	}
	return commands.NewFulfillmentUsecase(
		pending, urls, fakeEncoder{}, cfg,
		clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		slog.Default(),
	)
}

func seedPending(t *testing.T, store *fakePendingStore, alias *string) uuid.UUID {
	t.Helper()
	p, err := payment.NewPendingPayment("https://example.com", alias, nil, 1, 990, time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), p))
	return p.SessionID()
}

func TestFulfillment_SingleCaller(t *testing.T) {
	pending := newFakePendingStore()
	urls := newFakeURLStore()
	uc := newFulfillment(pending, urls)
	sessionID := seedPending(t, pending, nil)

	result, err := uc.Execute(context.Background(), sessionID)
	require.NoError(t, err)
	assert.False(t, result.Replayed)
	assert.Len(t, result.ShortCode, shorturl.CodeLength)
	assert.Equal(t, "https://sho.rt/"+result.ShortCode, result.ShortURL)
	assert.Contains(t, result.QRCodeDataURL, "data:image/png;base64,")

	assert.Equal(t, payment.StatusCompleted, pending.statusOf(sessionID))
	assert.Equal(t, 1, urls.count())
}

func TestFulfillment_ConcurrentCallersCreateExactlyOneURL(t *testing.T) {
	const callers = 32

	pending := newFakePendingStore()
	urls := newFakeURLStore()
	uc := newFulfillment(pending, urls)
	sessionID := seedPending(t, pending, nil)

	type outcome struct {
		result *commands.FulfillmentResult
		err    error
	}
	outcomes := make([]outcome, callers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			r, err := uc.Execute(context.Background(), sessionID)
			outcomes[i] = outcome{result: r, err: err}
		}(i)
	}
	close(start)
	wg.Wait()

	var winners, replays, inFlight int
	var winnerURL string
	for _, o := range outcomes {
		switch {
		case o.err == nil && !o.result.Replayed:
			winners++
			winnerURL = o.result.ShortURL
		case o.err == nil && o.result.Replayed:
			replays++
		case errors.Is(o.err, errs.ErrAlreadyProcessed):
			inFlight++
		default:
			t.Fatalf("unexpected outcome: %v", o.err)
		}
	}

	assert.Equal(t, 1, winners, "exactly one caller must perform fulfillment")
	assert.Equal(t, callers-1, replays+inFlight)
	assert.Equal(t, 1, urls.count(), "exactly one url must exist")
	assert.Equal(t, payment.StatusCompleted, pending.statusOf(sessionID))

	for _, o := range outcomes {
		if o.err == nil && o.result.Replayed {
			assert.Equal(t, winnerURL, o.result.ShortURL, "replays must observe the winner's short url")
		}
	}
}

func TestFulfillment_UsesCustomAlias(t *testing.T) {
	pending := newFakePendingStore()
	urls := newFakeURLStore()
	uc := newFulfillment(pending, urls)
	alias := "my-link"
	sessionID := seedPending(t, pending, &alias)

	result, err := uc.Execute(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "my-link", result.ShortCode)
	assert.Equal(t, "https://sho.rt/my-link", result.ShortURL)
}

func TestFulfillment_AliasCollisionFallsBackToGeneratedCode(t *testing.T) {
	pending := newFakePendingStore()
	urls := newFakeURLStore()
	uc := newFulfillment(pending, urls)

	taken, err := shorturl.NewUrl("my-link", "https://other.example", nil, nil, "data:image/png;base64,x", time.Now())
	require.NoError(t, err)
	require.NoError(t, urls.Create(context.Background(), taken))

	alias := "my-link"
	sessionID := seedPending(t, pending, &alias)

	result, err := uc.Execute(context.Background(), sessionID)
	require.NoError(t, err)
	assert.NotEqual(t, "my-link", result.ShortCode)
	assert.Len(t, result.ShortCode, shorturl.CodeLength)
	assert.Equal(t, payment.StatusCompleted, pending.statusOf(sessionID))
}

func TestFulfillment_StoreFailureMarksFailed(t *testing.T) {
	pending := newFakePendingStore()
	urls := newFakeURLStore()
	urls.createErr = infra.WrapRepoErr("connection lost", errors.New("broken"), infra.KindDBFailure)
	uc := newFulfillment(pending, urls)
	sessionID := seedPending(t, pending, nil)

	_, err := uc.Execute(context.Background(), sessionID)
	require.Error(t, err)
	assert.Equal(t, payment.StatusFailed, pending.statusOf(sessionID))

	// failed is terminal: a later attempt is a no-op
	_, err = uc.Execute(context.Background(), sessionID)
	assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
	assert.Equal(t, 0, urls.count())
}

func TestFulfillment_CompletedSessionReplays(t *testing.T) {
	pending := newFakePendingStore()
	urls := newFakeURLStore()
	uc := newFulfillment(pending, urls)
	sessionID := seedPending(t, pending, nil)

	first, err := uc.Execute(context.Background(), sessionID)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), sessionID)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.ShortURL, second.ShortURL)
	assert.Equal(t, 1, urls.count())
}

func TestFulfillment_UnknownSession(t *testing.T) {
	pending := newFakePendingStore()
	uc := newFulfillment(pending, newFakeURLStore())

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}
