package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	servicesPath = "/api/services"
	bookingsPath = "/api/bookings"
)

// APIError is returned for any non-2xx response. Message is the server's text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client calls the salon API. Every method performs exactly one HTTP request
// and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a client for baseURL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 10 * time.Second})
}

// NewWithHTTPClient constructs a client using the given HTTP client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListServices fetches every service.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.do(ctx, http.MethodGet, servicesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetService fetches one service.
func (c *Client) GetService(ctx context.Context, id string) (*Service, error) {
	var out Service
	if err := c.do(ctx, http.MethodGet, itemPath(servicesPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateService creates a service.
func (c *Client) CreateService(ctx context.Context, form ServiceForm) (*Service, error) {
	var out Service
	if err := c.do(ctx, http.MethodPost, servicesPath, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateService sends a partial update for a service.
func (c *Client) UpdateService(ctx context.Context, id string, form ServiceForm) (*Service, error) {
	var out Service
	if err := c.do(ctx, http.MethodPut, itemPath(servicesPath, id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService deletes a service and returns the confirmation message.
func (c *Client) DeleteService(ctx context.Context, id string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodDelete, itemPath(servicesPath, id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListBookings fetches every booking with its service embedded.
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.do(ctx, http.MethodGet, bookingsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBooking fetches one booking.
func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodGet, itemPath(bookingsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking creates a booking.
func (c *Client) CreateBooking(ctx context.Context, form BookingForm) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, bookingsPath, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBooking sends a partial update for a booking.
func (c *Client) UpdateBooking(ctx context.Context, id string, form BookingForm) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPut, itemPath(bookingsPath, id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBooking deletes a booking and returns the confirmation message.
func (c *Client) DeleteBooking(ctx context.Context, id string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodDelete, itemPath(bookingsPath, id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read error response: %v", err)}
		}
		var msg messageResponse
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Message == "" {
			msg.Message = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
