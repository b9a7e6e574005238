package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireStaff enforces the staff/admin role. Authenticated visitors without
// it land on their dashboard instead. Run it after RequireAuth.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := Session(c)
			if sess == nil || !sess.User.IsStaff() {
				return c.Redirect(http.StatusFound, "/dashboard")
			}
			return next(c)
		}
	}
}
