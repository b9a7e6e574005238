package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

func TestRequireAuth_RedirectsSignedOut(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAuth()
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/auth/login?next=%2Fdashboard" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, &domain.Session{User: domain.AuthUser{Role: "candidate"}})

	called := false
	handler := RequireAuth()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireStaff_RedirectsNonStaff(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, &domain.Session{User: domain.AuthUser{Role: "candidate"}})

	handler := RequireStaff()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestRequireStaff_AllowsStaffAndAdmin(t *testing.T) {
	for _, role := range []string{"staff", "Admin"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(SessionKey, &domain.Session{User: domain.AuthUser{Role: role}})

		called := false
		handler := RequireStaff()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("role %q: handler error: %v", role, err)
		}
		if !called {
			t.Fatalf("role %q should pass the staff gate", role)
		}
	}
}
