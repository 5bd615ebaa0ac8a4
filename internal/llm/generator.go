package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
)

// Plan provenance values.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

const systemPrompt = "你是一位专业的旅行规划师，请根据用户提供的信息生成详细的旅行行程安排。"

// Result is a finished generation: an itinerary plus its budget breakdown and
// where it came from. Callers cannot otherwise distinguish a remote result
// from the local fallback.
type Result struct {
	Itinerary models.Itinerary       `json:"itinerary"`
	Breakdown models.BudgetBreakdown `json:"budget_breakdown"`
	Source    string                 `json:"source"`
}

// Generator produces itineraries via the remote completion endpoint, falling
// back to local synthesis on any failure. Generate never returns an error:
// every failure path degrades to the deterministic local result.
type Generator struct {
	cfg    config.LLMConfig
	client openai.Client
	synth  *planner.Synthesizer
}

// NewGenerator creates a new Generator instance
func NewGenerator(cfg config.LLMConfig, synth *planner.Synthesizer) *Generator {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Generator{
		cfg:    cfg,
		client: openai.NewClient(opts...),
		synth:  synth,
	}
}

// Generate produces an itinerary and budget breakdown for the request.
// Without an API key it goes straight to local synthesis; with one it calls
// the completion endpoint and falls back on transport errors, empty
// responses, and unparseable or structurally invalid payloads.
func (g *Generator) Generate(ctx context.Context, req models.TripRequest) Result {
	if g.cfg.APIKey == "" {
		log.Println("LLM API key not configured, using local itinerary synthesis")
		return g.local(req)
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(req)),
		},
		Temperature: openai.Float(g.cfg.Temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		log.Printf("LLM request failed: %v, falling back to local synthesis", err)
		return g.local(req)
	}
	if len(resp.Choices) == 0 {
		log.Println("LLM response contained no choices, falling back to local synthesis")
		return g.local(req)
	}

	itinerary, breakdown, err := ParseCompletion(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("LLM response unparseable: %v, falling back to local synthesis", err)
		return g.local(req)
	}
	if itinerary.TravelStyle == "" {
		itinerary.TravelStyle = req.TravelStyle
	}
	if itinerary.Budget == 0 {
		itinerary.Budget = req.Budget
	}

	return Result{Itinerary: itinerary, Breakdown: breakdown, Source: SourceRemote}
}

// local runs the synthesizer and budget allocator as the fallback result.
func (g *Generator) local(req models.TripRequest) Result {
	return Result{
		Itinerary: g.synth.Generate(req),
		Breakdown: planner.AllocateBudget(req.Budget),
		Source:    SourceLocal,
	}
}

// BuildPrompt renders the user's trip parameters into the generation prompt,
// including the JSON response shape the completion must follow.
func BuildPrompt(req models.TripRequest) string {
	var b strings.Builder
	b.WriteString("请为我规划一次旅行行程，以下是我的需求：\n")

	if req.Destination != "" {
		fmt.Fprintf(&b, "- 目的地: %s\n", req.Destination)
	}
	if req.Days > 0 {
		fmt.Fprintf(&b, "- 旅行天数: %d天\n", req.Days)
	}
	if req.StartDate != "" {
		fmt.Fprintf(&b, "- 出发日期: %s\n", req.StartDate)
	}
	if req.TravelStyle != "" {
		fmt.Fprintf(&b, "- 旅行风格: %s\n", req.TravelStyle)
	}
	if req.Budget > 0 {
		fmt.Fprintf(&b, "- 预算: %d元\n", req.Budget)
	}
	if req.Request != "" {
		fmt.Fprintf(&b, "- 其他需求: %s\n", req.Request)
	}

	b.WriteString(`
请提供以下格式的JSON响应：
{
  "destination": "目的地",
  "days": 天数,
  "budget": 预算,
  "total_estimated_cost": 总估算费用,
  "daily_itineraries": [
    {
      "day": 第几天,
      "activities": [
        {
          "time": "时间段",
          "title": "活动名称",
          "description": "活动描述",
          "location": "地点名称",
          "coordinates": [经度, 纬度],
          "cost": 费用
        }
      ]
    }
  ],
  "budget_breakdown": {
    "accommodation": 住宿费用,
    "transportation": 交通费用,
    "food": 餐饮费用,
    "attractions": 景点门票,
    "shopping": 购物费用,
    "other": 其他费用
  }
}`)

	return b.String()
}

// completionPayload is the wire shape the prompt asks the model to return.
type completionPayload struct {
	models.Itinerary
	BudgetBreakdown models.BudgetBreakdown `json:"budget_breakdown"`
}

// ParseCompletion decodes a completion payload into an itinerary and budget
// breakdown. Invalid JSON or a structurally empty itinerary is an error; the
// caller treats any error as a fallback trigger.
func ParseCompletion(content string) (models.Itinerary, models.BudgetBreakdown, error) {
	var payload completionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return models.Itinerary{}, models.BudgetBreakdown{}, fmt.Errorf("decode completion: %w", err)
	}

	if payload.Days < 1 || len(payload.DailyItineraries) == 0 {
		return models.Itinerary{}, models.BudgetBreakdown{}, fmt.Errorf("completion missing daily itineraries")
	}

	// Recompute the total when the model omitted it.
	if payload.TotalEstimatedCost == 0 {
		total := 0
		for _, day := range payload.DailyItineraries {
			for _, a := range day.Activities {
				total += a.Cost
			}
		}
		payload.TotalEstimatedCost = total
	}

	return payload.Itinerary, payload.BudgetBreakdown, nil
}
