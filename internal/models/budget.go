package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetItem is a user-entered expense line, independent of the generated
// BudgetBreakdown. Users add and remove items freely.
type BudgetItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
