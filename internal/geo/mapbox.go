package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
)

// defaultCenter is used by the mock fallback when the query matches no known
// city. Longitude/latitude of central Beijing.
var defaultCenter = []float64{116.3974, 39.9093}

// GeocodeResult is one resolved place.
type GeocodeResult struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
	Source      string    `json:"source"`      // "mapbox" or "mock"
}

// Client performs forward geocoding against the Mapbox places API. Without an
// access token it degrades to catalog-based mock results instead of erroring.
type Client struct {
	cfg        config.MapboxConfig
	httpClient *http.Client
	catalog    *planner.Catalog
}

// NewClient creates a new geocoding client
func NewClient(cfg config.MapboxConfig, catalog *planner.Catalog) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		catalog:    catalog,
	}
}

// mapboxResponse is the subset of the places API payload we read.
type mapboxResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

// Geocode resolves a free-form place query to a name and coordinates.
// With no token configured it returns a mock result and a nil error; with a
// token, remote failures are returned to the caller.
func (c *Client) Geocode(ctx context.Context, query string) (GeocodeResult, error) {
	if c.cfg.AccessToken == "" {
		log.Println("Mapbox access token not configured, using mock geocoding")
		return c.mock(query), nil
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json",
		c.cfg.BaseURL, url.PathEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return GeocodeResult{}, fmt.Errorf("build geocode request: %w", err)
	}
	q := req.URL.Query()
	q.Set("access_token", c.cfg.AccessToken)
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return GeocodeResult{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GeocodeResult{}, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var payload mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return GeocodeResult{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(payload.Features) == 0 {
		return GeocodeResult{}, fmt.Errorf("no results for %q", query)
	}

	f := payload.Features[0]
	return GeocodeResult{Name: f.PlaceName, Coordinates: f.Center, Source: "mapbox"}, nil
}

// mock resolves against the built-in city catalog, defaulting to the Beijing
// city center for unknown queries.
func (c *Client) mock(query string) GeocodeResult {
	if name, center, ok := c.catalog.CityCenter(query); ok {
		return GeocodeResult{Name: name, Coordinates: center, Source: "mock"}
	}
	return GeocodeResult{Name: query, Coordinates: defaultCenter, Source: "mock"}
}
