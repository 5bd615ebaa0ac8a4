package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"AI-TRAVEL-PLANNER_BACK-END/internal/dto"
	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
	"AI-TRAVEL-PLANNER_BACK-END/internal/utils"
)

// BudgetHandler handles budget breakdown and budget item HTTP requests
type BudgetHandler struct {
	db *pgxpool.Pool
}

// NewBudgetHandler creates a new BudgetHandler instance
func NewBudgetHandler(db *pgxpool.Pool) *BudgetHandler {
	return &BudgetHandler{db: db}
}

// Breakdown handles the budget split query
// @Summary Get a budget breakdown
// @Description Split a total budget across the fixed spending categories
// @Tags budget
// @Produce json
// @Param budget query int true "Total budget in yuan"
// @Success 200 {object} dto.BudgetBreakdownResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/budget/breakdown [get]
func (h *BudgetHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	budgetStr := r.URL.Query().Get("budget")
	if budgetStr == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "budget query parameter is required")
		return
	}
	budget, err := strconv.Atoi(budgetStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "budget must be an integer")
		return
	}

	breakdown := planner.AllocateBudget(budget)

	utils.WriteJSONResponse(w, http.StatusOK, dto.BudgetBreakdownResponse{
		Budget:    budget,
		Breakdown: breakdown,
		Total:     breakdown.Sum(),
	})
}

// Items routes POST and GET on /api/budget/items
func (h *BudgetHandler) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateItem(w, r)
	case http.MethodGet:
		h.ListItems(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateItem handles adding a budget item
// @Summary Add a budget item
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBudgetItemRequest true "Budget item"
// @Success 201 {object} dto.BudgetItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/budget/items [post]
func (h *BudgetHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateBudgetItemRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Name == "" || req.Amount <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name and a positive amount are required")
		return
	}

	id := uuid.New()
	now := time.Now()

	_, err := h.db.Exec(context.Background(),
		`INSERT INTO budget_items (id, user_id, name, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, userID, req.Name, req.Amount, now)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.BudgetItemResponse{
		ID:        id.String(),
		Name:      req.Name,
		Amount:    req.Amount,
		CreatedAt: utils.FormatTimestamp(now),
	})
}

// ListItems handles listing the user's budget items
// @Summary List budget items
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BudgetItemListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/budget/items [get]
func (h *BudgetHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT id, name, amount, created_at
		 FROM budget_items WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer rows.Close()

	items := make([]dto.BudgetItemResponse, 0)
	var total float64
	for rows.Next() {
		var item models.BudgetItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Amount, &item.CreatedAt); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		total += item.Amount
		items = append(items, dto.BudgetItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Amount:    item.Amount,
			CreatedAt: utils.FormatTimestamp(item.CreatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BudgetItemListResponse{
		Items: items,
		Total: total,
	})
}

// DeleteItem handles deleting one budget item
// @Summary Delete a budget item
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "Budget item ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/budget/items/{item_id} [delete]
func (h *BudgetHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/budget/items/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid item id", "item_id must be UUID")
		return
	}

	tag, err := h.db.Exec(context.Background(),
		`DELETE FROM budget_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if tag.RowsAffected() == 0 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Budget item not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Budget item deleted"})
}
