package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry extracts the exp claim from an access token without
// verifying its signature. The backend is the only party that validates
// tokens; the site only needs the expiry for display and logging.
func AccessTokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
