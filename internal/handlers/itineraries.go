package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
	"AI-TRAVEL-PLANNER_BACK-END/internal/utils"
)

// ItinerariesHandler handles saved itinerary HTTP requests
type ItinerariesHandler struct {
	db *pgxpool.Pool
}

// NewItinerariesHandler creates a new ItinerariesHandler instance
func NewItinerariesHandler(db *pgxpool.Pool) *ItinerariesHandler {
	return &ItinerariesHandler{db: db}
}

// Collection routes POST and GET on /api/itineraries
func (h *ItinerariesHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Save(w, r)
	case http.MethodGet:
		h.List(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item routes GET and DELETE on /api/itineraries/{itinerary_id}
func (h *ItinerariesHandler) Item(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.Get(w, r)
	case http.MethodDelete:
		h.Delete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Save handles saving a generated itinerary
// @Summary Save an itinerary
// @Description Persist a generated itinerary for the authenticated user
// @Tags itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveItineraryRequest true "Itinerary to save"
// @Success 201 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries [post]
func (h *ItinerariesHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.SaveItineraryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Destination == "" || req.Days < 1 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination and days are required")
		return
	}
	if len(req.Itinerary.DailyItineraries) == 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "itinerary must contain at least one day")
		return
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		startDate = &parsed
	}

	content, err := json.Marshal(req.Itinerary)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Encoding error", err.Error())
		return
	}

	id := uuid.New()
	now := time.Now()

	_, err = h.db.Exec(context.Background(),
		`INSERT INTO itineraries (id, user_id, destination, days, start_date, budget, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, userID, req.Destination, req.Days, startDate, req.Budget, content, now)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp := dto.ItineraryResponse{
		ID:          id.String(),
		Destination: req.Destination,
		Days:        req.Days,
		StartDate:   req.StartDate,
		Budget:      req.Budget,
		Itinerary:   &req.Itinerary,
		CreatedAt:   utils.FormatTimestamp(now),
	}

	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

// List handles listing the user's saved itineraries
// @Summary List itineraries
// @Description List the authenticated user's saved itineraries, newest first
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ItineraryListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries [get]
func (h *ItinerariesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT id, destination, days, start_date, budget, created_at
		 FROM itineraries WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer rows.Close()

	items := make([]dto.ItineraryResponse, 0)
	for rows.Next() {
		var rec models.SavedItinerary
		if err := rows.Scan(&rec.ID, &rec.Destination, &rec.Days, &rec.StartDate, &rec.Budget, &rec.CreatedAt); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		item := dto.ItineraryResponse{
			ID:          rec.ID.String(),
			Destination: rec.Destination,
			Days:        rec.Days,
			Budget:      rec.Budget,
			CreatedAt:   utils.FormatTimestamp(rec.CreatedAt),
		}
		if rec.StartDate != nil {
			s := utils.FormatDate(*rec.StartDate)
			item.StartDate = &s
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ItineraryListResponse{
		Itineraries: items,
		Total:       len(items),
	})
}

// Get handles retrieving one saved itinerary
// @Summary Get an itinerary
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param itinerary_id path string true "Itinerary ID"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{itinerary_id} [get]
func (h *ItinerariesHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/itineraries/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid itinerary id", "itinerary_id must be UUID")
		return
	}

	var rec models.SavedItinerary
	err = h.db.QueryRow(context.Background(),
		`SELECT id, user_id, destination, days, start_date, budget, content, created_at
		 FROM itineraries WHERE id = $1 AND user_id = $2`, id, userID).Scan(
		&rec.ID, &rec.UserID, &rec.Destination, &rec.Days, &rec.StartDate, &rec.Budget, &rec.Content, &rec.CreatedAt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Itinerary not found")
		return
	}

	var itinerary models.Itinerary
	if err := json.Unmarshal(rec.Content, &itinerary); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Encoding error", err.Error())
		return
	}

	resp := dto.ItineraryResponse{
		ID:          rec.ID.String(),
		Destination: rec.Destination,
		Days:        rec.Days,
		Budget:      rec.Budget,
		Itinerary:   &itinerary,
		CreatedAt:   utils.FormatTimestamp(rec.CreatedAt),
	}
	if rec.StartDate != nil {
		s := utils.FormatDate(*rec.StartDate)
		resp.StartDate = &s
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Delete handles deleting one saved itinerary
// @Summary Delete an itinerary
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param itinerary_id path string true "Itinerary ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{itinerary_id} [delete]
func (h *ItinerariesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/itineraries/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid itinerary id", "itinerary_id must be UUID")
		return
	}

	tag, err := h.db.Exec(context.Background(),
		`DELETE FROM itineraries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if tag.RowsAffected() == 0 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Itinerary not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Itinerary deleted"})
}
