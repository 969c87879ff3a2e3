package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/YahyaBCR/car-rental-BO-sub000/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds every HTTP call made by the client, including the
// token refresh exchange.
const DefaultTimeout = 30 * time.Second

// Credentials is the client's view of the credential store. The client never
// holds a token longer than one request's lifetime; it always reads through
// this interface.
type Credentials interface {
	Current() *auth.Session
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
}

// Client is the single gateway for every call to the back-office API. It
// attaches the access token to outgoing requests, detects expired-token
// responses, renews the token pair through a single shared refresh exchange,
// transparently retries each failed request once, and terminates the session
// when renewal is impossible.
type Client struct {
	baseURL string
	httpc   *http.Client
	// bypass issues the login/refresh/logout exchanges. It skips the
	// response pipeline entirely, so a 401 from the refresh endpoint can
	// never recurse into another refresh.
	bypass *http.Client

	creds       Credentials
	notify      Notifier
	refresh     refreshCoordinator
	termination sessionTerminator
}

// New creates a Client for the given backend base URL. A nil notifier is
// replaced with NopNotifier.
func New(baseURL string, creds Credentials, notify Notifier, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		bypass:  &http.Client{Timeout: timeout},
		creds:   creds,
		notify:  notify,
	}
}

// requestSpec is everything needed to issue (and re-issue) one API request.
// The body is kept as bytes so a retry after a token refresh can replay it.
type requestSpec struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

// buildRequest constructs the outgoing HTTP request, attaching the bearer
// credential when one exists and a request ID for traceability.
func (c *Client) buildRequest(ctx context.Context, spec requestSpec, accessToken string) (*http.Request, error) {
	urlStr := c.baseURL + spec.path
	if len(spec.query) > 0 {
		urlStr += "?" + spec.query.Encode()
	}

	var body io.Reader
	if spec.body != nil {
		body = bytes.NewReader(spec.body)
	}
	req, err := http.NewRequestWithContext(ctx, spec.method, urlStr, body)
	if err != nil {
		log.Error().Err(err).Str("method", spec.method).Str("url", urlStr).Msg("Failed to create HTTP request object")
		return nil, err
	}
	if accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	}
	if spec.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// send issues one attempt of the request with the given token.
func (c *Client) send(ctx context.Context, spec requestSpec, accessToken string) (*http.Response, error) {
	req, err := c.buildRequest(ctx, spec, accessToken)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", spec.method).Str("path", spec.path).Msg("Sending HTTP request")
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", spec.method).Str("path", spec.path).Msg("HTTP request failed")
		return nil, err
	}
	return resp, nil
}

// do runs the full response pipeline for one request. On success the response
// is returned with its body still open; every failure path closes the body it
// received.
//
// A request passes through the renewal branch at most once. If the retried
// request still comes back 401, the backend is rejecting the fresh token too
// and the session is terminated instead of looping.
func (c *Client) do(ctx context.Context, spec requestSpec) (*http.Response, error) {
	session := c.creds.Current()

	resp, err := c.send(ctx, spec, session.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return c.classify(resp)
	}
	drainAndClose(resp)

	newToken, err := c.renewAccessToken(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}

	retried, err := c.send(ctx, spec, newToken)
	if err != nil {
		return nil, err
	}
	if retried.StatusCode == http.StatusUnauthorized {
		// Renewed token rejected as well; give up rather than retry again.
		drainAndClose(retried)
		log.Warn().Str("path", spec.path).Msg("Request unauthorized even after token renewal")
		c.terminateSession(ctx)
		return nil, fmt.Errorf("%w: renewed token rejected", ErrSessionExpired)
	}
	return c.classify(retried)
}

// classify maps a completed response onto the pipeline's error taxonomy.
// 401 is handled by do before this is reached.
func (c *Client) classify(resp *http.Response) (*http.Response, error) {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	case resp.StatusCode == http.StatusForbidden:
		drainAndClose(resp)
		log.Warn().Str("url", resp.Request.URL.String()).Msg("Request forbidden for current role")
		c.notify.PermissionDenied()
		return nil, ErrPermissionDenied
	case resp.StatusCode >= 500:
		drainAndClose(resp)
		log.Error().Int("status", resp.StatusCode).Str("url", resp.Request.URL.String()).Msg("Backend returned server error")
		c.notify.ServerError()
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		log.Error().Int("status", resp.StatusCode).Str("url", resp.Request.URL.String()).Str("body", string(body)).Msg("HTTP request returned non-OK status")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

// renewAccessToken obtains a fresh access token, either by performing the
// refresh exchange (leader) or by waiting for the exchange already in flight.
// staleAccessToken is the token the failed attempt carried. On any refresh
// failure the session is terminated and ErrSessionExpired is returned.
func (c *Client) renewAccessToken(ctx context.Context, staleAccessToken string) (string, error) {
	leader, wait := c.refresh.begin()
	if !leader {
		log.Debug().Msg("Token refresh already in flight, waiting for its outcome")
		select {
		case out := <-wait:
			if out.err != nil {
				return "", out.err
			}
			return out.accessToken, nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	// Re-read the store after winning leadership. A cycle settled between
	// this request's failed attempt and now has already rotated the pair, and
	// its refresh token is single-use; spending it again would get the whole
	// session revoked. The current token is the renewal in that case.
	session := c.creds.Current()
	if session.AccessToken != "" && session.AccessToken != staleAccessToken {
		c.refresh.settle(refreshOutcome{accessToken: session.AccessToken})
		return session.AccessToken, nil
	}

	if session.RefreshToken == "" {
		log.Warn().Msg("Request unauthorized and no refresh token available")
		renewErr := fmt.Errorf("%w: not signed in", ErrSessionExpired)
		c.refresh.settle(refreshOutcome{err: renewErr})
		c.terminateSession(ctx)
		return "", renewErr
	}

	log.Info().Msg("Access token expired, refreshing")
	newAccess, newRefresh, err := c.exchangeRefreshToken(ctx, session.RefreshToken)
	if err == nil {
		err = c.creds.SetTokens(ctx, newAccess, newRefresh)
	}
	if err != nil {
		// Network errors, a rejection from the refresh endpoint, and a
		// persistence failure all end the session; none is retried.
		renewErr := fmt.Errorf("%w: token refresh failed: %w", ErrSessionExpired, err)
		c.refresh.settle(refreshOutcome{err: renewErr})
		c.terminateSession(ctx)
		return "", renewErr
	}

	c.refresh.settle(refreshOutcome{accessToken: newAccess})
	return newAccess, nil
}

// drainAndClose discards the remainder of a response body so the underlying
// connection can be reused.
func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
