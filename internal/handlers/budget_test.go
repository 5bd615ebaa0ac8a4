package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
)

func TestBudgetBreakdownEndpoint(t *testing.T) {
	h := NewBudgetHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/budget/breakdown?budget=3000", nil)
	rec := httptest.NewRecorder()

	h.Breakdown(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BudgetBreakdownResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3000, resp.Budget)
	assert.Equal(t, 1050, resp.Breakdown.Accommodation)
	assert.Equal(t, 750, resp.Breakdown.Transportation)
	assert.Equal(t, 600, resp.Breakdown.Food)
	assert.Equal(t, 300, resp.Breakdown.Attractions)
	assert.Equal(t, 150, resp.Breakdown.Shopping)
	assert.Equal(t, 150, resp.Breakdown.Other)
	assert.Equal(t, 3000, resp.Total)
}

func TestBudgetBreakdownEndpointValidation(t *testing.T) {
	h := NewBudgetHandler(nil)

	t.Run("missing budget", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/budget/breakdown", nil)
		rec := httptest.NewRecorder()

		h.Breakdown(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-integer budget", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/budget/breakdown?budget=lots", nil)
		rec := httptest.NewRecorder()

		h.Breakdown(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
