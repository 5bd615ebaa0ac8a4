package planner

import (
	"math"

	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
)

// Budget split fractions per category. Flooring each share may leave a small
// unallocated remainder, so the category sum is at most the total budget.
const (
	accommodationShare  = 0.35
	transportationShare = 0.25
	foodShare           = 0.20
	attractionsShare    = 0.10
	shoppingShare       = 0.05
	otherShare          = 0.05
)

// AllocateBudget splits a total budget across the fixed category set.
// A zero or negative budget yields zero or negative allocations; that is
// accepted behavior, not an error.
func AllocateBudget(budget int) models.BudgetBreakdown {
	share := func(fraction float64) int {
		return int(math.Floor(float64(budget) * fraction))
	}
	return models.BudgetBreakdown{
		Accommodation:  share(accommodationShare),
		Transportation: share(transportationShare),
		Food:           share(foodShare),
		Attractions:    share(attractionsShare),
		Shopping:       share(shoppingShare),
		Other:          share(otherShare),
	}
}
