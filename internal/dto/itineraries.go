package dto

import "AI-TRAVEL-PLANNER_BACK-END/internal/models"

// SaveItineraryRequest represents the request payload for saving an itinerary
type SaveItineraryRequest struct {
	Destination string           `json:"destination" validate:"required"`
	Days        int              `json:"days" validate:"required,min=1"`
	StartDate   *string          `json:"start_date,omitempty"` // YYYY-MM-DD
	Budget      int              `json:"budget"`
	Itinerary   models.Itinerary `json:"itinerary" validate:"required"`
}

// ItineraryResponse represents a saved itinerary in API responses
type ItineraryResponse struct {
	ID          string            `json:"id"`
	Destination string            `json:"destination"`
	Days        int               `json:"days"`
	StartDate   *string           `json:"start_date,omitempty"`
	Budget      int               `json:"budget"`
	Itinerary   *models.Itinerary `json:"itinerary,omitempty"` // omitted in list responses
	CreatedAt   string            `json:"created_at"`
}

// ItineraryListResponse represents the list of a user's saved itineraries
type ItineraryListResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
	Total       int                 `json:"total"`
}
