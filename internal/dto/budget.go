package dto

import "AI-TRAVEL-PLANNER_BACK-END/internal/models"

// BudgetBreakdownResponse represents the fixed-category split of a budget
type BudgetBreakdownResponse struct {
	Budget    int                    `json:"budget"`
	Breakdown models.BudgetBreakdown `json:"breakdown"`
	Total     int                    `json:"total"` // sum of all categories
}

// CreateBudgetItemRequest represents the request payload for adding a budget
// item
type CreateBudgetItemRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// BudgetItemResponse represents a budget item in API responses
type BudgetItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// BudgetItemListResponse represents a user's budget items with their total
type BudgetItemListResponse struct {
	Items []BudgetItemResponse `json:"items"`
	Total float64              `json:"total"`
}
