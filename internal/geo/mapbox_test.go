package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
)

func TestGeocodeRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/geocoding/v5/mapbox.places/")
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"features": []map[string]any{
				{"place_name": "Hangzhou, Zhejiang, China", "center": []float64{120.1551, 30.2741}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(config.MapboxConfig{AccessToken: "test-token", BaseURL: srv.URL}, planner.NewCatalog())

	res, err := client.Geocode(context.Background(), "杭州")
	require.NoError(t, err)
	assert.Equal(t, "mapbox", res.Source)
	assert.Equal(t, "Hangzhou, Zhejiang, China", res.Name)
	assert.Equal(t, []float64{120.1551, 30.2741}, res.Coordinates)
}

func TestGeocodeRemoteNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"features": []any{}})
	}))
	defer srv.Close()

	client := NewClient(config.MapboxConfig{AccessToken: "test-token", BaseURL: srv.URL}, planner.NewCatalog())

	_, err := client.Geocode(context.Background(), "不存在的地方")
	assert.Error(t, err)
}

func TestGeocodeRemoteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(config.MapboxConfig{AccessToken: "bad-token", BaseURL: srv.URL}, planner.NewCatalog())

	_, err := client.Geocode(context.Background(), "上海")
	assert.Error(t, err)
}

func TestGeocodeMockKnownCity(t *testing.T) {
	client := NewClient(config.MapboxConfig{}, planner.NewCatalog())

	res, err := client.Geocode(context.Background(), "上海")
	require.NoError(t, err)
	assert.Equal(t, "mock", res.Source)
	assert.Len(t, res.Coordinates, 2)
	assert.NotEmpty(t, res.Name)
}

func TestGeocodeMockUnknownCity(t *testing.T) {
	client := NewClient(config.MapboxConfig{}, planner.NewCatalog())

	res, err := client.Geocode(context.Background(), "乌鲁木齐")
	require.NoError(t, err)
	assert.Equal(t, "mock", res.Source)
	assert.Equal(t, "乌鲁木齐", res.Name)
	assert.Equal(t, defaultCenter, res.Coordinates)
}
