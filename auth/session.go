package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRecord is the denormalized admin profile cached for display purposes.
// The backend owns the canonical record; this copy is only shown in the UI.
type UserRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session represents the current authenticated principal. The refresh token
// may be empty when the backend issued none; the access token is what makes
// a session.
type Session struct {
	User         UserRecord `json:"user"`
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
}

// Authenticated reports whether the session holds an access token. Whether
// that token is still accepted is only ever discovered on the first API
// failure; no validation happens locally.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}

// TokenExpiry decodes the exp claim of an access token without verifying its
// signature. Validity is only ever established by the backend; this is for
// display and diagnostics.
func TokenExpiry(accessToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode access token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read token expiration: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("access token carries no expiration claim")
	}
	return exp.Time, nil
}
