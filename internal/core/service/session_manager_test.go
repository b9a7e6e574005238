package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

type stubStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	loadErr  error
	deletes  int
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubStore) Load(_ context.Context, profileID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.sessions[profileID], nil
}

func (s *stubStore) Save(_ context.Context, profileID string, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[profileID] = sess
	return nil
}

func (s *stubStore) Delete(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, profileID)
	s.deletes++
	return nil
}

func (s *stubStore) stored(profileID string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[profileID]
}

type stubAuthClient struct {
	refreshCalls int32
	refreshGate  chan struct{}
	refreshErr   error
	loginErr     error
	logoutErr    error
	next         *domain.Session
}

func (c *stubAuthClient) Login(_ context.Context, email, _ string) (*domain.Session, error) {
	if c.loginErr != nil {
		return nil, c.loginErr
	}
	sess := *c.next
	sess.User.Email = email
	return &sess, nil
}

func (c *stubAuthClient) Register(ctx context.Context, email, password string) (*domain.Session, error) {
	return c.Login(ctx, email, password)
}

func (c *stubAuthClient) Refresh(_ context.Context, _ string) (*domain.Session, error) {
	atomic.AddInt32(&c.refreshCalls, 1)
	if c.refreshGate != nil {
		<-c.refreshGate
	}
	if c.refreshErr != nil {
		return nil, c.refreshErr
	}
	sess := *c.next
	return &sess, nil
}

func (c *stubAuthClient) Logout(_ context.Context, _ string) error {
	return c.logoutErr
}

func (c *stubAuthClient) calls() int32 {
	return atomic.LoadInt32(&c.refreshCalls)
}

func expiryIn(now time.Time, d time.Duration) string {
	return now.Add(d).Format(time.RFC3339)
}

func newTestManager(store *stubStore, api *stubAuthClient, now time.Time) *SessionManager {
	m := NewSessionManager(store, api, zerolog.Nop())
	m.now = func() time.Time { return now }
	return m
}

func TestBootstrap_NoStoredSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{}
	m := newTestManager(store, api, now)

	if sess := m.Bootstrap(context.Background(), "p1"); sess != nil {
		t.Fatalf("expected nil session, got %+v", sess)
	}
	if api.calls() != 0 {
		t.Fatalf("no network call expected, got %d", api.calls())
	}
}

func TestBootstrap_ExpiredStoredSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.sessions["p1"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, -time.Hour),
	}
	api := &stubAuthClient{}
	m := newTestManager(store, api, now)

	if sess := m.Bootstrap(context.Background(), "p1"); sess != nil {
		t.Fatalf("expected nil session, got %+v", sess)
	}
	if api.calls() != 0 {
		t.Fatalf("expired session must not reach the network, got %d calls", api.calls())
	}
	if store.stored("p1") != nil {
		t.Fatalf("expired session not cleared from store")
	}
}

func TestBootstrap_UnparsableExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.sessions["p1"] = &domain.Session{RefreshToken: "rt", RefreshTokenExpiry: "garbage"}
	api := &stubAuthClient{}
	m := newTestManager(store, api, now)

	if sess := m.Bootstrap(context.Background(), "p1"); sess != nil {
		t.Fatalf("expected nil session, got %+v", sess)
	}
	if api.calls() != 0 {
		t.Fatalf("unparsable expiry must not reach the network")
	}
}

func TestBootstrap_ValidSessionRefreshes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.sessions["p1"] = &domain.Session{
		RefreshToken:       "old-rt",
		RefreshTokenExpiry: expiryIn(now, 24*time.Hour),
	}
	api := &stubAuthClient{next: &domain.Session{
		AccessToken:        "new-at",
		RefreshToken:       "new-rt",
		RefreshTokenExpiry: expiryIn(now, 48*time.Hour),
	}}
	m := newTestManager(store, api, now)

	sess := m.Bootstrap(context.Background(), "p1")
	if sess == nil || sess.RefreshToken != "new-rt" {
		t.Fatalf("expected refreshed session, got %+v", sess)
	}
	if api.calls() != 1 {
		t.Fatalf("expected exactly one refresh, got %d", api.calls())
	}
	if got := store.stored("p1"); got == nil || got.RefreshToken != "new-rt" {
		t.Fatalf("refreshed session not persisted: %+v", got)
	}
}

func TestBootstrap_RefreshFailureClears(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.sessions["p1"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 24*time.Hour),
	}
	api := &stubAuthClient{refreshErr: errors.New("backend down")}
	m := newTestManager(store, api, now)

	if sess := m.Bootstrap(context.Background(), "p1"); sess != nil {
		t.Fatalf("expected nil session after failed refresh")
	}
	if store.stored("p1") != nil {
		t.Fatalf("session not cleared after failed bootstrap refresh")
	}
	if m.Current("p1") != nil {
		t.Fatalf("in-memory session not cleared")
	}
}

func TestRefresh_NoActiveSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(newStubStore(), &stubAuthClient{}, now)

	if _, err := m.Refresh(context.Background(), "p1"); !errors.Is(err, domain.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestRefresh_InsideMarginFailsWithoutNetwork(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{}
	m := newTestManager(store, api, now)
	m.active["p1"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 30*time.Second),
	}

	_, err := m.Refresh(context.Background(), "p1")
	if !errors.Is(err, domain.ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
	if api.calls() != 0 {
		t.Fatalf("margin check must fail before any network call")
	}
	if m.Current("p1") != nil {
		t.Fatalf("session not cleared after expiry")
	}
}

func TestRefresh_ConcurrentCallsShareOneNetworkCall(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{
		refreshGate: make(chan struct{}),
		next: &domain.Session{
			RefreshToken:       "new-rt",
			RefreshTokenExpiry: expiryIn(now, 48*time.Hour),
		},
	}
	m := newTestManager(store, api, now)
	m.active["p1"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 24*time.Hour),
	}

	const callers = 5
	var wg sync.WaitGroup
	results := make([]*domain.Session, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = m.Refresh(context.Background(), "p1")
		}(i)
	}

	// Let every caller reach the in-flight slot before releasing the network.
	time.Sleep(100 * time.Millisecond)
	close(api.refreshGate)
	wg.Wait()

	if api.calls() != 1 {
		t.Fatalf("expected one network refresh, got %d", api.calls())
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if results[i] == nil || results[i].RefreshToken != "new-rt" {
			t.Fatalf("caller %d got %+v", i, results[i])
		}
	}
}

func TestRefresh_ConcurrentCallersShareTheError(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	refreshErr := errors.New("backend down")
	api := &stubAuthClient{
		refreshGate: make(chan struct{}),
		refreshErr:  refreshErr,
	}
	m := newTestManager(newStubStore(), api, now)
	m.active["p1"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 24*time.Hour),
	}

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.Refresh(context.Background(), "p1")
		}(i)
	}

	time.Sleep(100 * time.Millisecond)
	close(api.refreshGate)
	wg.Wait()

	if api.calls() != 1 {
		t.Fatalf("expected one network refresh, got %d", api.calls())
	}
	for i, err := range errs {
		if !errors.Is(err, refreshErr) {
			t.Fatalf("caller %d: expected shared error, got %v", i, err)
		}
	}
}

func TestLogin_PersistsSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{next: &domain.Session{
		User:               domain.AuthUser{ID: "u1", Role: "candidate", Status: "active"},
		AccessToken:        "at",
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 24*time.Hour),
	}}
	m := newTestManager(store, api, now)

	sess, err := m.Login(context.Background(), "p1", "a@b.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.Email != "a@b.com" {
		t.Fatalf("unexpected user %+v", sess.User)
	}
	if store.stored("p1") == nil {
		t.Fatalf("session not persisted after login")
	}
	if m.Current("p1") == nil {
		t.Fatalf("session not active after login")
	}
}

func TestLogin_BlankCredentialsSkipNetwork(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	api := &stubAuthClient{loginErr: errors.New("should not be called")}
	m := newTestManager(newStubStore(), api, now)

	if _, err := m.Login(context.Background(), "p1", "", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := m.Register(context.Background(), "p1", "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_FailureLeavesExistingSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{loginErr: errors.New("invalid credentials")}
	m := newTestManager(store, api, now)
	existing := &domain.Session{RefreshToken: "rt", RefreshTokenExpiry: expiryIn(now, time.Hour)}
	m.active["p1"] = existing

	if _, err := m.Login(context.Background(), "p1", "a@b.com", "wrong"); err == nil {
		t.Fatalf("expected login error")
	}
	if m.Current("p1") != existing {
		t.Fatalf("failed login must not touch the existing session")
	}
}

func TestLogout_RevokeFailureStillClears(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{logoutErr: errors.New("revoke failed")}
	m := newTestManager(store, api, now)
	m.active["p1"] = &domain.Session{RefreshToken: "rt", RefreshTokenExpiry: expiryIn(now, time.Hour)}
	store.sessions["p1"] = m.active["p1"]

	if err := m.Logout(context.Background(), "p1"); err != nil {
		t.Fatalf("logout must swallow revoke failures, got %v", err)
	}
	if m.Current("p1") != nil {
		t.Fatalf("in-memory session not cleared")
	}
	if store.stored("p1") != nil {
		t.Fatalf("persisted session not cleared")
	}
}

func TestLogout_NoSessionClearsQuietly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	api := &stubAuthClient{logoutErr: errors.New("should not be called")}
	m := newTestManager(newStubStore(), api, now)

	if err := m.Logout(context.Background(), "p1"); err != nil {
		t.Fatalf("logout without session: %v", err)
	}
}

func TestSweep_RefreshesActiveSessions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newStubStore()
	api := &stubAuthClient{next: &domain.Session{
		RefreshToken:       "new-rt",
		RefreshTokenExpiry: expiryIn(now, 48*time.Hour),
	}}
	m := newTestManager(store, api, now)
	m.active["fresh"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 24*time.Hour),
	}
	m.active["stale"] = &domain.Session{
		RefreshToken:       "rt",
		RefreshTokenExpiry: expiryIn(now, 10*time.Second),
	}

	m.sweep(context.Background())

	if api.calls() != 1 {
		t.Fatalf("expected one refresh (fresh profile only), got %d", api.calls())
	}
	if got := m.Current("fresh"); got == nil || got.RefreshToken != "new-rt" {
		t.Fatalf("fresh profile not refreshed: %+v", got)
	}
	if m.Current("stale") != nil {
		t.Fatalf("stale profile should have been signed out by the sweep")
	}
}
