package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/YahyaBCR/car-rental-BO-sub000/auth"
	"github.com/rs/zerolog/log"
)

// The auth endpoints are issued through the bypass HTTP client: they carry no
// bearer header and never enter the response pipeline, so a failing refresh
// or login cannot trigger another refresh.

// Login exchanges admin credentials for a session. It does not store
// anything; the caller hands the result to the credential store.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	var result struct {
		User         auth.UserRecord `json:"user"`
		Token        string          `json:"token"`
		RefreshToken string          `json:"refreshToken"`
	}
	err := c.postAuth(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	log.Info().Str("user", result.User.Email).Msg("Login successful")
	return &auth.Session{
		User:         result.User,
		AccessToken:  result.Token,
		RefreshToken: result.RefreshToken,
	}, nil
}

// exchangeRefreshToken performs the single refresh exchange on behalf of the
// refresh coordinator's leader.
func (c *Client) exchangeRefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	var result struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.postAuth(ctx, "/auth/refresh", map[string]string{
		"refreshToken": refreshToken,
	}, &result)
	if err != nil {
		return "", "", err
	}
	if result.Token == "" || result.RefreshToken == "" {
		return "", "", fmt.Errorf("refresh response carried an incomplete token pair")
	}
	return result.Token, result.RefreshToken, nil
}

// RevokeRefreshToken tells the backend to forget a refresh token. The
// credential store calls this on logout and discards the error; the response
// body is ignored by contract.
func (c *Client) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return c.postAuth(ctx, "/auth/logout", map[string]string{
		"refreshToken": refreshToken,
	}, nil)
}

// postAuth posts a JSON payload to an auth endpoint via the bypass client and
// decodes the response into out when out is non-nil.
func (c *Client) postAuth(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to create HTTP request object")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.bypass.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Auth endpoint request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().Int("status", resp.StatusCode).Str("path", path).Str("body", string(bodyBytes)).Msg("Auth endpoint returned non-OK status")
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to parse auth endpoint response")
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}
