package handlers

import (
	"net/http"

	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
	"AI-TRAVEL-PLANNER_BACK-END/internal/geo"
	"AI-TRAVEL-PLANNER_BACK-END/internal/utils"
)

// GeocodeHandler handles forward geocoding HTTP requests
type GeocodeHandler struct {
	client *geo.Client
}

// NewGeocodeHandler creates a new GeocodeHandler instance
func NewGeocodeHandler(client *geo.Client) *GeocodeHandler {
	return &GeocodeHandler{client: client}
}

// Geocode handles forward geocoding
// @Summary Geocode a place
// @Description Resolve a free-form place query to a name and coordinates
// @Tags geocode
// @Produce json
// @Param q query string true "Place query"
// @Success 200 {object} dto.GeocodeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/geocode [get]
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "q query parameter is required")
		return
	}

	result, err := h.client.Geocode(r.Context(), query)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Geocoding failed", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.GeocodeResponse{
		Name:        result.Name,
		Coordinates: result.Coordinates,
		Source:      result.Source,
	})
}
