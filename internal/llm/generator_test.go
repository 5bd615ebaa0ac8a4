package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
)

func newTestSynth() *planner.Synthesizer {
	return planner.NewSynthesizer(planner.NewCatalog(), nil)
}

// completionServer returns an httptest server that wraps the given message
// content in a chat completion response.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func validCompletion() string {
	payload := map[string]any{
		"destination":          "杭州",
		"days":                 2,
		"budget":               2000,
		"total_estimated_cost": 800,
		"daily_itineraries": []map[string]any{
			{
				"day": 1,
				"activities": []map[string]any{
					{
						"time":        "09:00",
						"title":       "西湖漫步",
						"description": "环湖步行，欣赏苏堤春晓。",
						"location":    "西湖",
						"coordinates": []float64{120.15, 30.25},
						"cost":        0,
					},
				},
			},
			{
				"day": 2,
				"activities": []map[string]any{
					{
						"time":        "10:00",
						"title":       "灵隐寺",
						"description": "参观千年古刹。",
						"location":    "灵隐寺",
						"coordinates": []float64{120.10, 30.24},
						"cost":        75,
					},
				},
			},
		},
		"budget_breakdown": map[string]int{
			"accommodation":  700,
			"transportation": 500,
			"food":           400,
			"attractions":    200,
			"shopping":       100,
			"other":          100,
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestGenerateRemote(t *testing.T) {
	srv := completionServer(t, validCompletion())
	defer srv.Close()

	gen := NewGenerator(config.LLMConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gpt-4",
		Temperature: 0.7,
	}, newTestSynth())

	res := gen.Generate(context.Background(), models.TripRequest{
		Destination: "杭州",
		Days:        2,
		Budget:      2000,
	})

	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, "杭州", res.Itinerary.Destination)
	assert.Equal(t, 2, res.Itinerary.Days)
	require.Len(t, res.Itinerary.DailyItineraries, 2)
	assert.Equal(t, "西湖漫步", res.Itinerary.DailyItineraries[0].Activities[0].Title)
	assert.Equal(t, 700, res.Breakdown.Accommodation)
	assert.Equal(t, 800, res.Itinerary.TotalEstimatedCost)
}

func TestGenerateFallbackWithoutAPIKey(t *testing.T) {
	gen := NewGenerator(config.LLMConfig{}, newTestSynth())

	res := gen.Generate(context.Background(), models.TripRequest{
		Destination: "成都",
		Days:        3,
		Budget:      3000,
	})

	assert.Equal(t, SourceLocal, res.Source)
	assert.Equal(t, "成都", res.Itinerary.Destination)
	assert.Len(t, res.Itinerary.DailyItineraries, 3)
	assert.Equal(t, 1050, res.Breakdown.Accommodation)
	assert.Equal(t, 3000, res.Breakdown.Sum())
}

func TestGenerateFallbackOnBadPayload(t *testing.T) {
	srv := completionServer(t, "这不是JSON")
	defer srv.Close()

	gen := NewGenerator(config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4",
	}, newTestSynth())

	res := gen.Generate(context.Background(), models.TripRequest{
		Destination: "上海",
		Days:        2,
		Budget:      1000,
	})

	assert.Equal(t, SourceLocal, res.Source)
	assert.Equal(t, "上海", res.Itinerary.Destination)
	assert.Len(t, res.Itinerary.DailyItineraries, 2)
	assert.Equal(t, 350, res.Breakdown.Accommodation)
}

func TestGenerateFallbackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	gen := NewGenerator(config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4",
	}, newTestSynth())

	res := gen.Generate(context.Background(), models.TripRequest{
		Destination: "北京",
		Days:        1,
		Budget:      500,
	})

	assert.Equal(t, SourceLocal, res.Source)
	assert.Len(t, res.Itinerary.DailyItineraries, 1)
}

func TestParseCompletionRejectsEmptyItinerary(t *testing.T) {
	_, _, err := ParseCompletion(`{"destination":"上海","days":0,"daily_itineraries":[]}`)
	assert.Error(t, err)
}

func TestParseCompletionRecomputesTotal(t *testing.T) {
	payload := `{
		"destination": "上海",
		"days": 1,
		"daily_itineraries": [
			{"day": 1, "activities": [
				{"time": "09:00", "title": "外滩", "cost": 120},
				{"time": "11:00", "title": "豫园", "cost": 40}
			]}
		]
	}`
	it, _, err := ParseCompletion(payload)
	require.NoError(t, err)
	assert.Equal(t, 160, it.TotalEstimatedCost)
}

func TestBuildPromptIncludesParameters(t *testing.T) {
	prompt := BuildPrompt(models.TripRequest{
		Destination: "西安",
		Days:        4,
		TravelStyle: models.StyleCulture,
		Budget:      5000,
		Request:     "想看兵马俑",
	})

	for _, want := range []string{"西安", "4天", "文化", "5000元", "想看兵马俑", "daily_itineraries", "budget_breakdown"} {
		assert.True(t, strings.Contains(prompt, want), fmt.Sprintf("prompt missing %q", want))
	}
}
