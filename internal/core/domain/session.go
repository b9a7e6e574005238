package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleStaff     = "staff"
	RoleAdmin     = "admin"
)

var ErrNoActiveSession = errors.New("no active session")
var ErrRefreshTokenExpired = errors.New("refresh token expired")
var ErrInvalidCredentials = errors.New("email and password are required")

// AuthUser is an immutable snapshot of the authenticated identity as the
// backend reported it. It is replaced wholesale on every session refresh,
// never mutated in place.
type AuthUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// IsStaff reports whether the user may enter the staff area.
func (u AuthUser) IsStaff() bool {
	switch strings.ToLower(u.Role) {
	case RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Session is the sole unit of authentication truth for one browser profile.
// The persisted copy in the store is a cache of this value, not a second
// source of truth. A new Session always replaces the prior one wholesale.
type Session struct {
	User               AuthUser `json:"user"`
	AccessToken        string   `json:"access_token"`
	RefreshToken       string   `json:"refresh_token"`
	RefreshTokenExpiry string   `json:"refresh_token_expiry"`
}

// RefreshExpiresAt parses the refresh token expiry timestamp. The zero time
// and false are returned when the value is missing or unparsable; such a
// session must never be treated as authenticated.
func (s *Session) RefreshExpiresAt() (time.Time, bool) {
	if s == nil || s.RefreshTokenExpiry == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s.RefreshTokenExpiry)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UsableFor reports whether the refresh token is still valid for at least
// margin beyond now.
func (s *Session) UsableFor(now time.Time, margin time.Duration) bool {
	exp, ok := s.RefreshExpiresAt()
	if !ok {
		return false
	}
	return exp.After(now.Add(margin))
}
