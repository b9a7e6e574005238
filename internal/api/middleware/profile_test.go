package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

type stubSessions struct {
	current    map[string]*domain.Session
	bootstraps int
}

func (s *stubSessions) Bootstrap(_ context.Context, profileID string) *domain.Session {
	s.bootstraps++
	return s.current[profileID]
}

func (s *stubSessions) Login(context.Context, string, string, string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessions) Register(context.Context, string, string, string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessions) Logout(context.Context, string) error { return nil }

func (s *stubSessions) Refresh(context.Context, string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessions) Current(string) *domain.Session { return nil }

func TestProfile_AssignsCookieToNewVisitor(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sessions := &stubSessions{current: map[string]*domain.Session{}}
	handler := Profile(sessions)(func(c echo.Context) error {
		if ProfileID(c) == "" {
			t.Fatalf("profile ID missing from context")
		}
		if Session(c) != nil {
			t.Fatalf("new visitor should be signed out")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookies := rec.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == ProfileCookie {
			found = ck
		}
	}
	if found == nil || found.Value == "" {
		t.Fatalf("profile cookie not set: %v", cookies)
	}
	if !found.HttpOnly {
		t.Fatalf("profile cookie must be HttpOnly")
	}
	if sessions.bootstraps != 0 {
		t.Fatalf("fresh profile must not hit the store")
	}
}

func TestProfile_BootstrapsReturningVisitor(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ProfileCookie, Value: "visitor-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	stored := &domain.Session{User: domain.AuthUser{Email: "a@b.com"}}
	sessions := &stubSessions{current: map[string]*domain.Session{"visitor-1": stored}}

	handler := Profile(sessions)(func(c echo.Context) error {
		if got := ProfileID(c); got != "visitor-1" {
			t.Fatalf("profile ID = %q", got)
		}
		if Session(c) != stored {
			t.Fatalf("session not attached")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if sessions.bootstraps != 1 {
		t.Fatalf("expected one bootstrap, got %d", sessions.bootstraps)
	}
}
