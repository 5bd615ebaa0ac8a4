package models

import (
	"time"

	"github.com/google/uuid"
)

// Travel styles accepted by the planner. Values are the Chinese labels the
// front end submits; unknown styles are tolerated and simply match no pool.
const (
	StyleCuisine  = "美食"
	StyleCulture  = "文化"
	StyleNature   = "自然"
	StyleShopping = "购物"
	StyleLeisure  = "休闲"
)

// TripRequest carries the user's trip preferences into generation.
// It is treated as immutable once handed to the synthesizer.
type TripRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	TravelStyle string `json:"travel_style"`
	Budget      int    `json:"budget"`
	Request     string `json:"request"`    // free-text request, optional
	StartDate   string `json:"start_date"` // YYYY-MM-DD, optional
}

// Activity is a single scheduled item within a day plan.
type Activity struct {
	Time        string    `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"` // [longitude, latitude]
	Cost        int       `json:"cost"`
}

// DayPlan is one day's ordered activity list.
type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the full multi-day plan for one generation request.
// It is rebuilt fresh per request and never patched in place.
type Itinerary struct {
	Destination        string    `json:"destination"`
	Days               int       `json:"days"`
	TravelStyle        string    `json:"travel_style,omitempty"`
	Budget             int       `json:"budget"`
	TotalEstimatedCost int       `json:"total_estimated_cost"`
	DailyItineraries   []DayPlan `json:"daily_itineraries"`
}

// BudgetBreakdown is the fixed-category fractional split of a total budget.
// Its sum and Itinerary.TotalEstimatedCost are independent estimates and may
// diverge; they are never reconciled.
type BudgetBreakdown struct {
	Accommodation  int `json:"accommodation"`
	Transportation int `json:"transportation"`
	Food           int `json:"food"`
	Attractions    int `json:"attractions"`
	Shopping       int `json:"shopping"`
	Other          int `json:"other"`
}

// Sum returns the total allocated across all categories.
func (b BudgetBreakdown) Sum() int {
	return b.Accommodation + b.Transportation + b.Food + b.Attractions + b.Shopping + b.Other
}

// SavedItinerary is a persisted itinerary record owned by a user.
type SavedItinerary struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Destination string     `json:"destination" db:"destination"`
	Days        int        `json:"days" db:"days"`
	StartDate   *time.Time `json:"start_date" db:"start_date"`
	Budget      int        `json:"budget" db:"budget"`
	Content     []byte     `json:"-" db:"content"` // itinerary JSON document
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
