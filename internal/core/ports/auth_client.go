package ports

import (
	"context"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// AuthClient talks to the backend authentication endpoints. Every success
// returns a complete Session; errors carry the server's message when one was
// provided.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, email, password string) (*domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)
	Logout(ctx context.Context, refreshToken string) error
}
