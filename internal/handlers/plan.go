package handlers

import (
	"net/http"

	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
	"AI-TRAVEL-PLANNER_BACK-END/internal/llm"
	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
	"AI-TRAVEL-PLANNER_BACK-END/internal/service"
	"AI-TRAVEL-PLANNER_BACK-END/internal/utils"
)

const maxTripDays = 30

// PlanHandler handles itinerary generation HTTP requests
type PlanHandler struct {
	generator *llm.Generator
	store     *service.PlanStore
}

// NewPlanHandler creates a new PlanHandler instance
func NewPlanHandler(generator *llm.Generator, store *service.PlanStore) *PlanHandler {
	return &PlanHandler{generator: generator, store: store}
}

// GeneratePlan handles plan generation
// @Summary Generate a travel plan
// @Description Generate an itinerary and budget breakdown for the given trip parameters
// @Tags plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GeneratePlanRequest true "Trip parameters"
// @Success 200 {object} dto.PlanResponse "Plan generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/plan [post]
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.GeneratePlanRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	// A destination can come directly or be recognized from free text.
	if req.Destination == "" && req.Request != "" {
		parsed := planner.ParseTranscript(req.Request)
		req.Destination = parsed.Destination
		if req.Days == 0 {
			req.Days = parsed.Days
		}
		if req.Budget == 0 {
			req.Budget = parsed.Budget
		}
	}

	if req.Destination == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination is required")
		return
	}
	if req.Days < 1 || req.Days > maxTripDays {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "days must be between 1 and 30")
		return
	}
	if req.Budget < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "budget cannot be negative")
		return
	}
	if req.StartDate != "" {
		if _, err := utils.ParseDate(req.StartDate); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
	}

	seq := h.store.Begin(userID)

	result := h.generator.Generate(r.Context(), models.TripRequest{
		Destination: req.Destination,
		Days:        req.Days,
		TravelStyle: req.TravelStyle,
		Budget:      req.Budget,
		Request:     req.Request,
		StartDate:   req.StartDate,
	})

	// Stale completions are dropped; the response still carries this result.
	h.store.Complete(userID, seq, result)

	utils.WriteJSONResponse(w, http.StatusOK, dto.PlanResponse{
		Source:          result.Source,
		Itinerary:       result.Itinerary,
		BudgetBreakdown: result.Breakdown,
	})
}

// CurrentPlan returns the user's most recently generated plan
// @Summary Get current plan
// @Description Get the most recently generated plan for the authenticated user
// @Tags plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PlanResponse "Current plan"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No plan generated yet"
// @Router /api/plan/current [get]
func (h *PlanHandler) CurrentPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	result, ok := h.store.Current(userID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No plan has been generated yet")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PlanResponse{
		Source:          result.Source,
		Itinerary:       result.Itinerary,
		BudgetBreakdown: result.Breakdown,
	})
}

// ParseTranscript extracts trip parameters from a speech transcript
// @Summary Parse a speech transcript
// @Description Recognize destination, days, and budget in a free-form transcript
// @Tags plan
// @Accept json
// @Produce json
// @Param request body dto.ParseTranscriptRequest true "Transcript"
// @Success 200 {object} dto.ParseTranscriptResponse "Recognized parameters"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/plan/parse [post]
func (h *PlanHandler) ParseTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ParseTranscriptRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Transcript == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "transcript is required")
		return
	}

	parsed := planner.ParseTranscript(req.Transcript)

	utils.WriteJSONResponse(w, http.StatusOK, dto.ParseTranscriptResponse{
		Destination: parsed.Destination,
		Days:        parsed.Days,
		Budget:      parsed.Budget,
		Request:     parsed.Request,
	})
}
