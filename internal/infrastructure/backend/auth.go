package backend

import (
	"context"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token"`
}

type authSuccess struct {
	AccessToken        string          `json:"access_token"`
	RefreshToken       string          `json:"refresh_token"`
	RefreshTokenExpiry string          `json:"refresh_token_expiry"`
	User               domain.AuthUser `json:"user"`
}

func (p authSuccess) session() *domain.Session {
	return &domain.Session{
		User:               p.User,
		AccessToken:        p.AccessToken,
		RefreshToken:       p.RefreshToken,
		RefreshTokenExpiry: p.RefreshTokenExpiry,
	}
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var out authSuccess
	if err := c.postJSON(ctx, "/auth/login", credentialsPayload{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return out.session(), nil
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, email, password string) (*domain.Session, error) {
	var out authSuccess
	if err := c.postJSON(ctx, "/auth/register", credentialsPayload{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return out.session(), nil
}

// Refresh exchanges a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	var out authSuccess
	if err := c.postJSON(ctx, "/auth/refresh", refreshPayload{RefreshToken: refreshToken}, &out); err != nil {
		return nil, err
	}
	return out.session(), nil
}

// Logout revokes a refresh token. The response body is ignored.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.postJSON(ctx, "/auth/logout", refreshPayload{RefreshToken: refreshToken}, nil)
}
