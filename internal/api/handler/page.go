package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/synergyvets/careers-site/internal/api/middleware"
	"github.com/synergyvets/careers-site/internal/core/domain"
)

// basePage carries the fields every template needs: the title and the
// signed-in user for the navigation bar.
type basePage struct {
	Title string
	User  *domain.AuthUser
}

func newBasePage(c echo.Context, title string) basePage {
	page := basePage{Title: title}
	if sess := middleware.Session(c); sess != nil {
		user := sess.User
		page.User = &user
	}
	return page
}
