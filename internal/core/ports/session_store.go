package ports

import (
	"context"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// SessionStore persists one serialized Session per browser profile. Load
// returns (nil, nil) when no session is stored or the stored payload is
// malformed; corruption is equivalent to "logged out", never an error.
type SessionStore interface {
	Load(ctx context.Context, profileID string) (*domain.Session, error)
	Save(ctx context.Context, profileID string, session *domain.Session) error
	Delete(ctx context.Context, profileID string) error
}
