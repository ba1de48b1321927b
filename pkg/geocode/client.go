// Package geocode translates addresses to coordinates and back through an
// external geocoding provider, degrading gracefully when the provider is
// unavailable: every failure becomes a nil result, never an error, so a
// geocoding outage cannot block a location update.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout = 10 * time.Second
)

// Fallback coordinates returned by Geocode when no API key is configured.
// A development stand-in, not a real geocode.
const (
	FallbackLatitude  = 37.7749
	FallbackLongitude = -122.4194
	FallbackAddress   = "San Francisco, CA, USA"
)

// Config is passed in explicitly at construction; the client never reads
// ambient settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Result is a forward-geocoded location.
type Result struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	Accuracy         string  `json:"accuracy"`
}

// Address is a reverse-geocoded flat address.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Cache stores forward-geocode results keyed by normalized address.
type Cache interface {
	Get(ctx context.Context, address string) (*Result, bool)
	Set(ctx context.Context, address string, r *Result)
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      Cache
	log        zerolog.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCache puts a cache in front of forward geocoding.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the logger used for degraded-path log lines.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a geocoding client. An empty API key is allowed: the
// client then serves fixed fallback results instead of calling the provider.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// providerResponse is the provider's JSON shape: a status string plus
// results[0].geometry.location and address_components.
type providerResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
			LocationType string `json:"location_type"`
		} `json:"geometry"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Geocode resolves an address to coordinates. Returns nil when the provider
// is unreachable, responds non-OK, or has no result for the address.
func (c *Client) Geocode(ctx context.Context, address string) *Result {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	if c.cfg.APIKey == "" {
		return &Result{
			Latitude:         FallbackLatitude,
			Longitude:        FallbackLongitude,
			FormattedAddress: FallbackAddress,
			Accuracy:         "APPROXIMATE",
		}
	}
	if c.cache != nil {
		if r, ok := c.cache.Get(ctx, address); ok {
			return r
		}
	}

	resp := c.fetch(ctx, url.Values{"address": {address}})
	if resp == nil || len(resp.Results) == 0 {
		return nil
	}
	first := resp.Results[0]
	r := &Result{
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
		Accuracy:         first.Geometry.LocationType,
	}
	if c.cache != nil {
		c.cache.Set(ctx, address, r)
	}
	return r
}

// ReverseGeocode resolves coordinates to a flat address. Returns nil on any
// provider failure; callers treat that as "address unknown", not fatal.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) *Address {
	if c.cfg.APIKey == "" {
		return &Address{
			Address: FallbackAddress,
			City:    "San Francisco",
			State:   "CA",
			Country: "United States",
		}
	}

	resp := c.fetch(ctx, url.Values{"latlng": {fmt.Sprintf("%f,%f", lat, lng)}})
	if resp == nil || len(resp.Results) == 0 {
		return nil
	}
	first := resp.Results[0]
	addr := &Address{Address: first.FormattedAddress}
	for _, comp := range first.AddressComponents {
		for _, typ := range comp.Types {
			switch typ {
			case "locality":
				addr.City = comp.LongName
			case "administrative_area_level_1":
				addr.State = comp.ShortName
			case "country":
				addr.Country = comp.LongName
			case "postal_code":
				addr.PostalCode = comp.LongName
			}
		}
	}
	return addr
}

// fetch performs the provider call; any transport or status failure is
// logged and collapsed to nil.
func (c *Client) fetch(ctx context.Context, params url.Values) *providerResponse {
	params.Set("key", c.cfg.APIKey)
	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Warn().Err(err).Msg("geocode: build request")
		return nil
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("geocode: provider unreachable")
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("geocode: provider returned non-200")
		return nil
	}
	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Warn().Err(err).Msg("geocode: decode response")
		return nil
	}
	if parsed.Status != "OK" {
		c.log.Warn().Str("provider_status", parsed.Status).Msg("geocode: provider status not OK")
		return nil
	}
	return &parsed
}
