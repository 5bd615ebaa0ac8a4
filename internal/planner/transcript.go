package planner

import (
	"regexp"
	"strconv"
	"strings"

	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
)

var (
	destinationPattern = regexp.MustCompile(`去([^旅游玩]+)[旅游玩]`)
	daysPattern        = regexp.MustCompile(`(\d+)天`)
	budgetPattern      = regexp.MustCompile(`预算([\d,]+)元`)
)

// ParseTranscript extracts trip parameters from a free-form spoken transcript.
// Fields that cannot be recognized are left at their zero values; the full
// transcript is always carried along in Request.
func ParseTranscript(transcript string) models.TripRequest {
	req := models.TripRequest{Request: transcript}

	if m := destinationPattern.FindStringSubmatch(transcript); m != nil {
		req.Destination = strings.TrimSpace(m[1])
	}
	if m := daysPattern.FindStringSubmatch(transcript); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			req.Days = days
		}
	}
	if m := budgetPattern.FindStringSubmatch(transcript); m != nil {
		if budget, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			req.Budget = budget
		}
	}

	return req
}
