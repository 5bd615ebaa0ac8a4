package planner

import (
	"fmt"
	"math/rand"
	"time"

	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
)

// timeSlots is the fixed ordered slot list; assignment cycles by index mod 6.
var timeSlots = []string{"09:00", "11:00", "13:00", "15:00", "17:00", "19:00"}

const (
	minActivitiesPerDay = 4
	maxActivitiesPerDay = 6
	minActivityCost     = 50
	maxActivityCost     = 249
	maxStyleDraws       = 2
)

// Synthesizer builds itineraries from the activity catalog. The random source
// is injected so generation is reproducible in tests; pass nil for a
// time-seeded source.
type Synthesizer struct {
	catalog *Catalog
	rng     *rand.Rand
}

// NewSynthesizer creates a new Synthesizer instance
func NewSynthesizer(catalog *Catalog, rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{catalog: catalog, rng: rng}
}

// Generate synthesizes a full itinerary for the request. Destinations that
// match a known city use that city's fixed templates verbatim; all others get
// randomly selected catalog activities. The returned total is the sum of
// activity costs and is intentionally not reconciled against req.Budget.
func (s *Synthesizer) Generate(req models.TripRequest) models.Itinerary {
	itinerary := models.Itinerary{
		Destination: req.Destination,
		Days:        req.Days,
		TravelStyle: req.TravelStyle,
		Budget:      req.Budget,
	}

	total := 0
	for day := 1; day <= req.Days; day++ {
		var activities []models.Activity
		if tpl, matched := s.catalog.TemplatesFor(req.Destination, day); matched {
			activities = tpl
		} else {
			activities = s.randomDayActivities(req.Destination, req.TravelStyle)
		}

		for _, a := range activities {
			total += a.Cost
		}
		itinerary.DailyItineraries = append(itinerary.DailyItineraries, models.DayPlan{
			Day:        day,
			Title:      fmt.Sprintf("%s第%d天行程", req.Destination, day),
			Activities: activities,
		})
	}
	itinerary.TotalEstimatedCost = total

	return itinerary
}

// randomDayActivities picks 4-6 activities for one day: up to two draws from
// the style pool first (repeat draws are possible there), then fills from the
// remaining catalog skipping duplicates until the target count is reached or
// the pool runs out.
func (s *Synthesizer) randomDayActivities(destination, style string) []models.Activity {
	count := s.rng.Intn(maxActivitiesPerDay-minActivitiesPerDay+1) + minActivitiesPerDay

	stylePool := s.catalog.ActivitiesFor(style)
	var otherPool []string
	for _, a := range s.catalog.AllActivities() {
		if !containsString(stylePool, a) {
			otherPool = append(otherPool, a)
		}
	}

	styleDraws := maxStyleDraws
	if count < styleDraws {
		styleDraws = count
	}
	if len(stylePool) < styleDraws {
		styleDraws = len(stylePool)
	}

	var chosen []string
	for i := 0; i < styleDraws; i++ {
		chosen = append(chosen, stylePool[s.rng.Intn(len(stylePool))])
	}

	pool := append([]string(nil), otherPool...)
	for len(chosen) < count && len(pool) > 0 {
		i := s.rng.Intn(len(pool))
		name := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		if !containsString(chosen, name) {
			chosen = append(chosen, name)
		}
	}

	activities := make([]models.Activity, 0, len(chosen))
	for i, name := range chosen {
		activities = append(activities, models.Activity{
			Time:        timeSlots[i%len(timeSlots)],
			Title:       name,
			Description: fmt.Sprintf("%s著名的%s，不容错过的体验。", destination, name),
			Cost:        s.rng.Intn(maxActivityCost-minActivityCost+1) + minActivityCost,
		})
	}

	return activities
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
