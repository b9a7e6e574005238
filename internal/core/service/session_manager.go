package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/synergyvets/careers-site/internal/api/metrics"
	"github.com/synergyvets/careers-site/internal/core/domain"
	"github.com/synergyvets/careers-site/internal/core/ports"
)

const (
	// refreshMargin is the minimum remaining refresh-token validity required
	// before a network refresh is attempted.
	refreshMargin = 60 * time.Second
	// sweepInterval is the period of the background refresh sweep.
	sweepInterval = 10 * time.Minute
)

// SessionManager owns the single authoritative session per browser profile.
// In-memory state is the source of truth; the store holds a persisted cache
// that survives restarts. One instance lives for the whole process.
type SessionManager struct {
	store ports.SessionStore
	api   ports.AuthClient
	log   zerolog.Logger
	now   func() time.Time

	mu     sync.Mutex
	active map[string]*domain.Session

	// refreshing coalesces concurrent Refresh calls per profile onto a single
	// network call so every caller observes the same result.
	refreshing singleflight.Group
}

func NewSessionManager(store ports.SessionStore, api ports.AuthClient, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:  store,
		api:    api,
		log:    log,
		now:    time.Now,
		active: make(map[string]*domain.Session),
	}
}

// Bootstrap restores a profile's session from the store. A missing, corrupt,
// or expired stored session ends unauthenticated without any network call.
// A usable stored session is provisionally activated, then replaced by one
// network refresh; if the refresh fails the session is cleared.
func (m *SessionManager) Bootstrap(ctx context.Context, profileID string) *domain.Session {
	stored, err := m.store.Load(ctx, profileID)
	if err != nil {
		m.log.Warn().Err(err).Str("profile", profileID).Msg("session store read failed, treating as signed out")
		stored = nil
	}

	if stored == nil {
		m.clear(ctx, profileID)
		metrics.SessionBootstrapsTotal.WithLabelValues("none").Inc()
		return nil
	}

	if !stored.UsableFor(m.now(), 0) {
		m.clear(ctx, profileID)
		metrics.SessionBootstrapsTotal.WithLabelValues("expired").Inc()
		return nil
	}

	m.mu.Lock()
	m.active[profileID] = stored
	m.mu.Unlock()

	refreshed, err := m.Refresh(ctx, profileID)
	if err != nil {
		m.log.Warn().Err(err).Str("profile", profileID).Msg("bootstrap refresh failed")
		m.clear(ctx, profileID)
		metrics.SessionBootstrapsTotal.WithLabelValues("refresh_failed").Inc()
		return nil
	}

	metrics.SessionBootstrapsTotal.WithLabelValues("restored").Inc()
	return refreshed
}

// Login authenticates against the backend and replaces the profile's session
// wholesale. Failures pass through untouched; the existing session, if any,
// is left alone.
func (m *SessionManager) Login(ctx context.Context, profileID, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	sess, err := m.api.Login(ctx, email, password)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("login", "error").Inc()
		return nil, err
	}

	m.persist(ctx, profileID, sess)
	metrics.AuthRequestsTotal.WithLabelValues("login", "ok").Inc()
	return sess, nil
}

// Register creates an account and activates the returned session, with the
// same contract as Login.
func (m *SessionManager) Register(ctx context.Context, profileID, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	sess, err := m.api.Register(ctx, email, password)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("register", "error").Inc()
		return nil, err
	}

	m.persist(ctx, profileID, sess)
	metrics.AuthRequestsTotal.WithLabelValues("register", "ok").Inc()
	return sess, nil
}

// Logout revokes the refresh token server-side when a session exists, then
// unconditionally clears local state. A failed revoke is logged and
// swallowed; logout always succeeds locally.
func (m *SessionManager) Logout(ctx context.Context, profileID string) error {
	m.mu.Lock()
	sess := m.active[profileID]
	m.mu.Unlock()

	if sess == nil {
		m.clear(ctx, profileID)
		return nil
	}

	if err := m.api.Logout(ctx, sess.RefreshToken); err != nil {
		m.log.Error().Err(err).Str("profile", profileID).Msg("refresh token revoke failed during logout")
	}

	m.clear(ctx, profileID)
	return nil
}

// Refresh replaces the profile's session with a freshly minted one. It fails
// fast when no session is active, and without a network call when the
// refresh token has less than refreshMargin of validity left (the session is
// cleared in that case). Any network failure also clears the session.
// Concurrent calls for the same profile share one in-flight network call and
// its result.
func (m *SessionManager) Refresh(ctx context.Context, profileID string) (*domain.Session, error) {
	v, err, _ := m.refreshing.Do(profileID, func() (any, error) {
		return m.doRefresh(ctx, profileID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Session), nil
}

func (m *SessionManager) doRefresh(ctx context.Context, profileID string) (*domain.Session, error) {
	m.mu.Lock()
	sess := m.active[profileID]
	m.mu.Unlock()

	if sess == nil {
		return nil, domain.ErrNoActiveSession
	}

	if !sess.UsableFor(m.now(), refreshMargin) {
		m.clear(ctx, profileID)
		metrics.SessionRefreshesTotal.WithLabelValues("expired").Inc()
		return nil, domain.ErrRefreshTokenExpired
	}

	next, err := m.api.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		m.log.Warn().Err(err).Str("profile", profileID).Msg("session refresh failed")
		m.clear(ctx, profileID)
		metrics.SessionRefreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	m.persist(ctx, profileID, next)
	metrics.SessionRefreshesTotal.WithLabelValues("ok").Inc()
	return next, nil
}

// Current returns the in-memory session for a profile, nil when none.
func (m *SessionManager) Current(profileID string) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[profileID]
}

// Run drives the background refresh sweep until ctx is cancelled. Every
// sweepInterval each active session is re-checked against refreshMargin and
// refreshed; failures are logged, never propagated. A failed sweep simply
// leaves the profile signed out.
func (m *SessionManager) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *SessionManager) sweep(ctx context.Context) {
	m.mu.Lock()
	profiles := make([]string, 0, len(m.active))
	for id := range m.active {
		profiles = append(profiles, id)
	}
	m.mu.Unlock()

	for _, id := range profiles {
		if _, err := m.Refresh(ctx, id); err != nil {
			m.log.Warn().Err(err).Str("profile", id).Msg("scheduled session refresh failed")
		}
	}
}

func (m *SessionManager) persist(ctx context.Context, profileID string, sess *domain.Session) {
	m.mu.Lock()
	m.active[profileID] = sess
	m.mu.Unlock()

	if err := m.store.Save(ctx, profileID, sess); err != nil {
		m.log.Error().Err(err).Str("profile", profileID).Msg("session store write failed")
	}

	if exp, ok := AccessTokenExpiry(sess.AccessToken); ok {
		m.log.Debug().Str("profile", profileID).Time("access_token_expiry", exp).Msg("session activated")
	}
}

func (m *SessionManager) clear(ctx context.Context, profileID string) {
	m.mu.Lock()
	delete(m.active, profileID)
	m.mu.Unlock()

	if err := m.store.Delete(ctx, profileID); err != nil {
		m.log.Error().Err(err).Str("profile", profileID).Msg("session store delete failed")
	}
}
