package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/synergyvets/careers-site/internal/api/middleware"
	"github.com/synergyvets/careers-site/internal/core/ports"
)

const defaultAfterLogin = "/dashboard"

// AuthHandler serves the login and register forms and drives the session
// service from their submissions.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

type registerForm struct {
	Email           string `form:"email"            validate:"required,email"`
	Password        string `form:"password"         validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	Next            string `form:"next"`
}

type authPage struct {
	basePage
	Error string
	Email string
	Next  string
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	if middleware.Session(c) != nil {
		return c.Redirect(http.StatusFound, safeNext(c.QueryParam("next")))
	}
	return c.Render(http.StatusOK, "login.html", authPage{
		basePage: newBasePage(c, "Sign in — Synergy Vets"),
		Next:     c.QueryParam("next"),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.loginError(c, form, "invalid form submission")
	}
	form.Email = strings.TrimSpace(form.Email)
	if err := c.Validate(form); err != nil {
		return h.loginError(c, form, err.Error())
	}

	_, err := h.sessions.Login(c.Request().Context(), middleware.ProfileID(c), form.Email, form.Password)
	if err != nil {
		return h.loginError(c, form, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, safeNext(form.Next))
}

func (h *AuthHandler) loginError(c echo.Context, form loginForm, msg string) error {
	return c.Render(http.StatusOK, "login.html", authPage{
		basePage: newBasePage(c, "Sign in — Synergy Vets"),
		Error:    msg,
		Email:    form.Email,
		Next:     form.Next,
	})
}

func (h *AuthHandler) RegisterForm(c echo.Context) error {
	if middleware.Session(c) != nil {
		return c.Redirect(http.StatusFound, safeNext(c.QueryParam("next")))
	}
	return c.Render(http.StatusOK, "register.html", authPage{
		basePage: newBasePage(c, "Create account — Synergy Vets"),
		Next:     c.QueryParam("next"),
	})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.registerError(c, form, "invalid form submission")
	}
	form.Email = strings.TrimSpace(form.Email)
	if err := c.Validate(form); err != nil {
		return h.registerError(c, form, err.Error())
	}

	_, err := h.sessions.Register(c.Request().Context(), middleware.ProfileID(c), form.Email, form.Password)
	if err != nil {
		return h.registerError(c, form, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, safeNext(form.Next))
}

func (h *AuthHandler) registerError(c echo.Context, form registerForm, msg string) error {
	return c.Render(http.StatusOK, "register.html", authPage{
		basePage: newBasePage(c, "Create account — Synergy Vets"),
		Error:    msg,
		Email:    form.Email,
		Next:     form.Next,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context(), middleware.ProfileID(c)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// safeNext keeps post-auth redirects on-site: only rooted paths are allowed,
// anything else falls back to the dashboard.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return defaultAfterLogin
	}
	return next
}
