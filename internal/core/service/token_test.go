package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	got, ok := AccessTokenExpiry(signed)
	if !ok {
		t.Fatalf("expected expiry to parse")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}
}

func TestAccessTokenExpiry_Malformed(t *testing.T) {
	if _, ok := AccessTokenExpiry("not-a-jwt"); ok {
		t.Fatalf("malformed token must not yield an expiry")
	}

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := noExp.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, ok := AccessTokenExpiry(signed); ok {
		t.Fatalf("token without exp must not yield an expiry")
	}
}
