package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeFallbackWithoutAPIKey(t *testing.T) {
	c := NewClient(Config{})
	r := c.Geocode(context.Background(), "1600 Amphitheatre Parkway")
	require.NotNil(t, r)
	assert.Equal(t, FallbackLatitude, r.Latitude)
	assert.Equal(t, FallbackLongitude, r.Longitude)
	assert.Equal(t, FallbackAddress, r.FormattedAddress)

	// identical fallback regardless of input
	r2 := c.Geocode(context.Background(), "somewhere else entirely")
	require.NotNil(t, r2)
	assert.Equal(t, r, r2)
}

func TestReverseGeocodeFallbackWithoutAPIKey(t *testing.T) {
	c := NewClient(Config{})
	a := c.ReverseGeocode(context.Background(), 40.0, -74.0)
	require.NotNil(t, a)
	assert.Equal(t, "San Francisco", a.City)
}

func TestGeocodeEmptyAddress(t *testing.T) {
	c := NewClient(Config{})
	assert.Nil(t, c.Geocode(context.Background(), "   "))
}

func TestGeocodeParsesProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10 Downing St", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "10 Downing St, London SW1A 2AA, UK",
				"geometry": {"location": {"lat": 51.5034, "lng": -0.1276}, "location_type": "ROOFTOP"}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	r := c.Geocode(context.Background(), "10 Downing St")
	require.NotNil(t, r)
	assert.InDelta(t, 51.5034, r.Latitude, 1e-9)
	assert.InDelta(t, -0.1276, r.Longitude, 1e-9)
	assert.Equal(t, "ROOFTOP", r.Accuracy)
}

func TestReverseGeocodeParsesAddressComponents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "277 Bedford Ave, Brooklyn, NY 11211, USA",
				"geometry": {"location": {"lat": 40.714, "lng": -73.961}, "location_type": "ROOFTOP"},
				"address_components": [
					{"long_name": "Brooklyn", "short_name": "Brooklyn", "types": ["locality", "political"]},
					{"long_name": "New York", "short_name": "NY", "types": ["administrative_area_level_1"]},
					{"long_name": "United States", "short_name": "US", "types": ["country"]},
					{"long_name": "11211", "short_name": "11211", "types": ["postal_code"]}
				]
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	a := c.ReverseGeocode(context.Background(), 40.714, -73.961)
	require.NotNil(t, a)
	assert.Equal(t, "277 Bedford Ave, Brooklyn, NY 11211, USA", a.Address)
	assert.Equal(t, "Brooklyn", a.City)
	assert.Equal(t, "NY", a.State)
	assert.Equal(t, "United States", a.Country)
	assert.Equal(t, "11211", a.PostalCode)
}

func TestGeocodeProviderFailuresReturnNil(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"http 500": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"zero results": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		},
		"over query limit": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
		},
		"garbage body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()
			c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
			assert.Nil(t, c.Geocode(context.Background(), "anywhere"))
			assert.Nil(t, c.ReverseGeocode(context.Background(), 1, 1))
		})
	}
}

func TestGeocodeUnreachableProviderReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	assert.Nil(t, c.Geocode(context.Background(), "anywhere"))
	assert.Nil(t, c.ReverseGeocode(context.Background(), 1, 1))
}

type mapCache struct {
	entries map[string]*Result
	sets    int
}

func (m *mapCache) Get(_ context.Context, address string) (*Result, bool) {
	r, ok := m.entries[address]
	return r, ok
}

func (m *mapCache) Set(_ context.Context, address string, r *Result) {
	m.entries[address] = r
	m.sets++
}

func TestGeocodeUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "X", "geometry": {"location": {"lat": 1, "lng": 2}, "location_type": "ROOFTOP"}}]
		}`))
	}))
	defer srv.Close()

	cache := &mapCache{entries: map[string]*Result{}}
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, WithCache(cache))

	first := c.Geocode(context.Background(), "somewhere")
	require.NotNil(t, first)
	second := c.Geocode(context.Background(), "somewhere")
	require.NotNil(t, second)

	assert.Equal(t, 1, calls, "second lookup should be served from cache")
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first, second)
}
