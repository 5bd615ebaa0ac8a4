package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
	"AI-TRAVEL-PLANNER_BACK-END/internal/geo"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
)

func TestGeocodeEndpointMockFallback(t *testing.T) {
	// No access token, so the handler serves catalog data.
	client := geo.NewClient(config.MapboxConfig{}, planner.NewCatalog())
	h := NewGeocodeHandler(client)

	req := httptest.NewRequest(http.MethodGet, "/api/geocode?q=上海", nil)
	rec := httptest.NewRecorder()

	h.Geocode(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GeocodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "mock", resp.Source)
	assert.Len(t, resp.Coordinates, 2)
}

func TestGeocodeEndpointMissingQuery(t *testing.T) {
	client := geo.NewClient(config.MapboxConfig{}, planner.NewCatalog())
	h := NewGeocodeHandler(client)

	req := httptest.NewRequest(http.MethodGet, "/api/geocode", nil)
	rec := httptest.NewRecorder()

	h.Geocode(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeocodeEndpointRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := geo.NewClient(config.MapboxConfig{AccessToken: "bad", BaseURL: srv.URL}, planner.NewCatalog())
	h := NewGeocodeHandler(client)

	req := httptest.NewRequest(http.MethodGet, "/api/geocode?q=上海", nil)
	rec := httptest.NewRecorder()

	h.Geocode(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
