package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/synergyvets/careers-site/internal/api/middleware"
	"github.com/synergyvets/careers-site/internal/core/service"
)

// DashboardHandler renders the gated account pages. The auth and role gates
// run as middleware; these handlers can assume an active session.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardPage struct {
	basePage
	Role          string
	Status        string
	IsStaff       bool
	SessionExpiry string
}

func (h *DashboardHandler) Dashboard(c echo.Context) error {
	sess := middleware.Session(c)

	page := dashboardPage{
		basePage: newBasePage(c, "Dashboard — Synergy Vets"),
		Role:     sess.User.Role,
		Status:   sess.User.Status,
		IsStaff:  sess.User.IsStaff(),
	}
	if exp, ok := service.AccessTokenExpiry(sess.AccessToken); ok {
		page.SessionExpiry = exp.UTC().Format(time.RFC1123)
	}

	return c.Render(http.StatusOK, "dashboard.html", page)
}

func (h *DashboardHandler) Staff(c echo.Context) error {
	sess := middleware.Session(c)

	return c.Render(http.StatusOK, "staff.html", dashboardPage{
		basePage: newBasePage(c, "Staff — Synergy Vets"),
		Role:     sess.User.Role,
		Status:   sess.User.Status,
		IsStaff:  true,
	})
}
