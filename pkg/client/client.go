// Package client talks to a remote desk-booking service over HTTP and
// keeps the local session state for it: an API client, a remote-backed
// booking repository, a credential store and the auth flow tying them
// together.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/dto"
)

// defaultTimeout bounds every request; a request that outlives it is
// abandoned and surfaces as ErrUnavailable.
const defaultTimeout = 10 * time.Second

// Client is a thin HTTP client for the booking service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP creates a client using the given http.Client.
// Useful in tests and for callers that need custom transports.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) endpoint(code, name string) string {
	return fmt.Sprintf("%s/api/%s/%s", c.baseURL, code, name)
}

// CheckAuth verifies an access code against the service. It returns nil
// when the service answers 200, apperrors.ErrUnauthorized for any other
// status, and apperrors.ErrUnavailable for transport failures.
func (c *Client) CheckAuth(ctx context.Context, code string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(code, "auth"), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: auth check returned status %d", apperrors.ErrUnauthorized, resp.StatusCode)
	}
	return nil
}

// UserInfo fetches the profile and current bookings for an access code.
func (c *Client) UserInfo(ctx context.Context, code string) (*dto.UserInfoResponse, error) {
	var info dto.UserInfoResponse
	if err := c.getJSON(ctx, c.endpoint(code, "info"), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// AvailableBookings fetches the availability map: date string to free places.
func (c *Client) AvailableBookings(ctx context.Context, code string) (dto.AvailableBookingsResponse, error) {
	var availability dto.AvailableBookingsResponse
	if err := c.getJSON(ctx, c.endpoint(code, "booking"), &availability); err != nil {
		return nil, err
	}
	return availability, nil
}

// CreateBooking books a place for a date. Only a 201 counts as success;
// any other status or transport error is a typed rejection with no
// partial effects assumed.
func (c *Client) CreateBooking(ctx context.Context, code, date string, placeID int) (int64, error) {
	payload, err := json.Marshal(dto.CreateBookingRequest{Date: date, PlaceID: placeID})
	if err != nil {
		return 0, fmt.Errorf("failed to encode booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(code, "book"), bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var result dto.CreateBookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode booking response: %w", err)
		}
		return result.BookingID, nil
	case http.StatusConflict:
		return 0, fmt.Errorf("%w: place %d on %s", apperrors.ErrAlreadyBooked, placeID, date)
	case http.StatusNotFound:
		return 0, fmt.Errorf("%w: unknown place %d for date %s", apperrors.ErrNotFound, placeID, date)
	case http.StatusBadRequest:
		return 0, fmt.Errorf("%w: booking request rejected", apperrors.ErrValidation)
	case http.StatusUnauthorized:
		return 0, fmt.Errorf("%w: access code rejected", apperrors.ErrUnauthorized)
	default:
		return 0, fmt.Errorf("%w: booking returned status %d", apperrors.ErrUnavailable, resp.StatusCode)
	}
}

// getJSON performs a GET and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: access code rejected", apperrors.ErrUnauthorized)
	default:
		return fmt.Errorf("%w: unexpected status %d", apperrors.ErrUnavailable, resp.StatusCode)
	}
}
