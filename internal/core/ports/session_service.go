package ports

import (
	"context"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// SessionService owns the authoritative session for each browser profile.
// One instance is constructed at process start and disposed at shutdown.
type SessionService interface {
	// Bootstrap restores the persisted session for a profile, attempting one
	// network refresh when the stored session is still usable. It returns the
	// resulting session, or nil when the profile ends up unauthenticated.
	// Bootstrap never fails: a missing, corrupt, or expired stored session and
	// a failed refresh all end in the unauthenticated state.
	Bootstrap(ctx context.Context, profileID string) *domain.Session
	Login(ctx context.Context, profileID, email, password string) (*domain.Session, error)
	Register(ctx context.Context, profileID, email, password string) (*domain.Session, error)
	// Logout revokes the refresh token server-side on a best-effort basis and
	// always clears local state.
	Logout(ctx context.Context, profileID string) error
	// Refresh replaces the session wholesale with a freshly minted one.
	// Concurrent calls for the same profile share a single network call.
	Refresh(ctx context.Context, profileID string) (*domain.Session, error)
	// Current returns the in-memory session for a profile, nil when none.
	Current(profileID string) *domain.Session
}
