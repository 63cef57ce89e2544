package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultBaseURL   = "https://api.weather.gov"
	defaultUserAgent = "weather-mcp/1.0 (weather-mcp@example.com)"
	geoJSONMediaType = "application/geo+json"
)

// ErrUpstreamUnavailable covers every way an upstream fetch can fail: network
// error, non-2xx status, wrong content type, or an unparseable body. The
// concrete cause stays in the wrap chain for the diagnostic log; callers only
// branch on this sentinel.
var ErrUpstreamUnavailable = errors.New("upstream weather data unavailable")

// Client issues GET requests against the weather provider.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates an upstream client. The http.Client carries no explicit
// timeout: the provider's defaults apply, matching the no-retry/no-timeout
// contract of the upstream calls.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{},
	}
}

// ActiveAlerts fetches the active alerts for a two-letter region code.
func (c *Client) ActiveAlerts(ctx context.Context, state string) (*AlertsResponse, error) {
	u := fmt.Sprintf("%s/alerts/active?area=%s", c.baseURL, url.QueryEscape(state))
	return fetch[AlertsResponse](ctx, c, u)
}

// Points resolves a coordinate to its grid point metadata. Coordinates are
// rendered to four decimals so a point always maps to the same URL.
func (c *Client) Points(ctx context.Context, lat, lon float64) (*PointsResponse, error) {
	u := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon)
	return fetch[PointsResponse](ctx, c, u)
}

// Forecast fetches the forecast document referenced by a points response.
func (c *Client) Forecast(ctx context.Context, forecastURL string) (*ForecastResponse, error) {
	return fetch[ForecastResponse](ctx, c, forecastURL)
}

// fetch performs one GET and decodes the body into T. Success requires a
// completed request, a 2xx status, a geo-JSON content type, and a body that
// decodes into T; any miss collapses to ErrUpstreamUnavailable.
func fetch[T any](ctx context.Context, c *Client, rawURL string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, unavailable(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", geoJSONMediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unavailable(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, unavailable(fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL))
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, geoJSONMediaType) {
		return nil, unavailable(fmt.Errorf("unexpected content type %q from %s", contentType, rawURL))
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, unavailable(fmt.Errorf("decode response: %w", err))
	}

	return &payload, nil
}

func unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, cause)
}
