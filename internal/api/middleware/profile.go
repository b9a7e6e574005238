package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/synergyvets/careers-site/internal/core/domain"
	"github.com/synergyvets/careers-site/internal/core/ports"
)

const (
	// ProfileCookie identifies one browser profile across visits.
	ProfileCookie = "sv_profile"
	// ProfileIDKey and SessionKey are the echo context keys set by Profile.
	ProfileIDKey = "profile_id"
	SessionKey   = "session"

	profileCookieMaxAge = 365 * 24 * 3600
)

// Profile assigns every browser a stable anonymous profile ID via cookie and
// attaches the profile's session (nil when signed out) to the request
// context. A profile whose session is not yet in memory is bootstrapped from
// the store; a brand-new profile skips the store entirely.
func Profile(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var profileID string
			fresh := false

			if cookie, err := c.Cookie(ProfileCookie); err == nil && cookie.Value != "" {
				profileID = cookie.Value
			} else {
				profileID = uuid.NewString()
				fresh = true
				c.SetCookie(&http.Cookie{
					Name:     ProfileCookie,
					Value:    profileID,
					Path:     "/",
					MaxAge:   profileCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ProfileIDKey, profileID)

			var sess *domain.Session
			if !fresh {
				sess = sessions.Current(profileID)
				if sess == nil {
					sess = sessions.Bootstrap(c.Request().Context(), profileID)
				}
			}
			c.Set(SessionKey, sess)

			return next(c)
		}
	}
}

// ProfileID returns the profile assigned by Profile.
func ProfileID(c echo.Context) string {
	id, _ := c.Get(ProfileIDKey).(string)
	return id
}

// Session returns the active session for the request, nil when signed out.
func Session(c echo.Context) *domain.Session {
	sess, _ := c.Get(SessionKey).(*domain.Session)
	return sess
}
