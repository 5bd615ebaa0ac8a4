package dto

import "AI-TRAVEL-PLANNER_BACK-END/internal/models"

// GeneratePlanRequest represents the request payload for plan generation
type GeneratePlanRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	TravelStyle string `json:"travel_style,omitempty"`
	Budget      int    `json:"budget"`
	StartDate   string `json:"start_date,omitempty"`
	Request     string `json:"request,omitempty"` // free-text requirements
}

// PlanResponse represents a generated plan with its provenance
type PlanResponse struct {
	Source          string                 `json:"source"` // "remote" or "local"
	Itinerary       models.Itinerary       `json:"itinerary"`
	BudgetBreakdown models.BudgetBreakdown `json:"budget_breakdown"`
}

// ParseTranscriptRequest represents a speech transcript to extract trip
// parameters from
type ParseTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// ParseTranscriptResponse represents the trip parameters recognized in a
// transcript
type ParseTranscriptResponse struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Budget      int    `json:"budget"`
	Request     string `json:"request"`
}
