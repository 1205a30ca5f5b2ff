package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"golang.org/x/time/rate"
)

// ErrAddressNotFound is returned when the geocoder has no match for the query.
var ErrAddressNotFound = errors.New("address not found")

// NominatimFacade resolves free-form addresses to coordinates using the Nominatim search API.
type NominatimFacade struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NominatimOpt configures a NominatimFacade.
type NominatimOpt func(*NominatimFacade)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) NominatimOpt {
	return func(f *NominatimFacade) {
		f.httpClient = c
	}
}

// WithRateLimit caps outgoing requests per second. Values <= 0 disable throttling.
func WithRateLimit(rps float64) NominatimOpt {
	return func(f *NominatimFacade) {
		if rps <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewNominatimFacade creates a facade for baseURL. Every request carries userAgent,
// which Nominatim requires to identify the application.
func NewNominatimFacade(baseURL, userAgent string, timeout time.Duration, opts ...NominatimOpt) *NominatimFacade {
	f := &NominatimFacade{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the coordinates of the best match for address.
// The timeout covers both the rate limiter wait and the HTTP round trip.
func (f *NominatimFacade) Geocode(ctx context.Context, address string) (lat, lon float64, err error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return 0, 0, fmt.Errorf("geocoder rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/search?%s", f.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Warnw("geocoding request failed", "address", address, "error", err)
		return 0, 0, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	logger.FromContext(ctx).Debugw("geocoding response",
		"address", address,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, 0, fmt.Errorf("geocoder error: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("JSON decode error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, ErrAddressNotFound
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return lat, lon, nil
}
