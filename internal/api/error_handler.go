package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/api/middleware"
	"github.com/synergyvets/careers-site/internal/core/domain"
	"github.com/synergyvets/careers-site/internal/infrastructure/backend"
)

type errorPage struct {
	Title   string
	Status  int
	Message string
	User    *domain.AuthUser
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders the not-found page for 404s and the error page otherwise.
//   - Logs unexpected errors internally without leaking details to visitors.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		template := "error.html"
		title := "Something went wrong"
		if code == http.StatusNotFound {
			template = "not_found.html"
			title = "Page not found"
		}

		var user *domain.AuthUser
		if sess := middleware.Session(c); sess != nil {
			u := sess.User
			user = &u
		}

		renderErr := c.Render(code, template, errorPage{
			Title:   title,
			Status:  code,
			Message: msg,
			User:    user,
		})
		if renderErr != nil {
			log.Error().Err(renderErr).Msg("error page render failed")
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, domain.ErrNoActiveSession), errors.Is(err, domain.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "your session has expired, please sign in again"
	}

	// Backend failures keep their status code so the page can report it.
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		log.Error().
			Int("status", apiErr.Status).
			Str("path", c.Path()).
			Msg("backend request failed")
		return http.StatusBadGateway, fmt.Sprintf("backend request failed: %s", apiErr.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
