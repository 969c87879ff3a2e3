package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Do executes an arbitrary authenticated request against the backend and
// returns the raw response body. Every call is subject to the token renewal
// pipeline.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", err)
		}
	}

	resp, err := c.do(ctx, requestSpec{method: method, path: path, query: query, body: body})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read response body")
		return nil, err
	}
	return data, nil
}

// getJSON fetches path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Error().Err(err).Str("path", path).Str("body_preview", preview(data)).Msg("Failed to parse response JSON")
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}

func preview(data []byte) string {
	if len(data) > 200 {
		data = data[:200]
	}
	return string(data)
}

//
// === Back-office resource types ===
//

// User is an admin-visible marketplace account.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
}

// Car is a rentable vehicle listing.
type Car struct {
	ID         string  `json:"id"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	City       string  `json:"city"`
	DailyPrice float64 `json:"dailyPrice"`
	Status     string  `json:"status"`
}

// Booking is one rental reservation.
type Booking struct {
	ID       string  `json:"id"`
	CarID    string  `json:"carId"`
	Renter   string  `json:"renter"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Status   string  `json:"status"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Dashboard carries the headline counts shown on the back-office landing
// screen.
type Dashboard struct {
	Users    int     `json:"users"`
	Cars     int     `json:"cars"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Currency string  `json:"currency"`
}

// Page is the backend's paged listing envelope.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
}

//
// === Listing and reporting endpoints ===
//

// ListUsers fetches one page of marketplace accounts.
func (c *Client) ListUsers(ctx context.Context, page int) (*Page[User], error) {
	var result Page[User]
	if err := c.getJSON(ctx, "/admin/users", pageQuery(page), &result); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &result, nil
}

// ListCars fetches one page of vehicle listings.
func (c *Client) ListCars(ctx context.Context, page int) (*Page[Car], error) {
	var result Page[Car]
	if err := c.getJSON(ctx, "/admin/cars", pageQuery(page), &result); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return &result, nil
}

// ListBookings fetches one page of reservations, optionally filtered by
// status.
func (c *Client) ListBookings(ctx context.Context, page int, status string) (*Page[Booking], error) {
	query := pageQuery(page)
	if status != "" {
		query.Set("status", status)
	}
	var result Page[Booking]
	if err := c.getJSON(ctx, "/admin/bookings", query, &result); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return &result, nil
}

// FetchDashboard retrieves the headline figures for the current marketplace.
func (c *Client) FetchDashboard(ctx context.Context) (*Dashboard, error) {
	var result Dashboard
	if err := c.getJSON(ctx, "/admin/dashboard", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard: %w", err)
	}
	return &result, nil
}

// OpenReport starts a streamed download of the financial report for the given
// date range. It returns the response body (caller closes it) and the content
// length, or -1 when the backend does not announce one.
func (c *Client) OpenReport(ctx context.Context, from, to string) (io.ReadCloser, int64, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	resp, err := c.do(ctx, requestSpec{method: http.MethodGet, path: "/admin/reports/financial", query: query})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open financial report: %w", err)
	}
	return resp.Body, resp.ContentLength, nil
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}
