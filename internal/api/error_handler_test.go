package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/api/handler"
	"github.com/synergyvets/careers-site/internal/core/domain"
	"github.com/synergyvets/careers-site/internal/infrastructure/backend"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	renderer, err := handler.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer

	req := httptest.NewRequest(http.MethodGet, "/jobs/unknown-role", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandler_JobNotFound(t *testing.T) {
	c, rec := newErrorContext(t)
	h := NewHTTPErrorHandler(zerolog.Nop())

	h(domain.ErrJobNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Fatalf("not-found page missing: %s", rec.Body.String())
	}
}

func TestErrorHandler_BackendFailureCarriesStatus(t *testing.T) {
	c, rec := newErrorContext(t)
	h := NewHTTPErrorHandler(zerolog.Nop())

	h(&backend.APIError{Status: http.StatusInternalServerError, Message: "500 Internal Server Error"}, c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "500") {
		t.Fatalf("error page must report the backend status: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoNotFound(t *testing.T) {
	c, rec := newErrorContext(t)
	h := NewHTTPErrorHandler(zerolog.Nop())

	h(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	c, rec := newErrorContext(t)
	h := NewHTTPErrorHandler(zerolog.Nop())

	h(errors.New("boom"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
