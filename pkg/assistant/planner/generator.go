package planner

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"triponic-be/pkg/assistant"
	"triponic-be/pkg/llm"
)

// fallbackExcerptLen is how much of the raw completion survives into a
// degraded plan's summary and first morning slot.
const fallbackExcerptLen = 200

var digitRunRe = regexp.MustCompile(`\d+`)

// ExtractDays pulls the day count out of a free-text duration like "5 days"
// or "about a week, 7 nights". The first contiguous digit run wins; inputs
// with no digits default to 1.
func ExtractDays(duration string) int {
	match := digitRunRe.FindString(duration)
	if match == "" {
		return 1
	}
	n, err := strconv.Atoi(match)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Params are the inputs to plan generation.
type Params struct {
	Destination string
	Duration    string // free text, see ExtractDays
	Interests   []string
	Travelers   int
	Budget      string
	ClientName  string
}

const generatePromptTemplate = `You are an expert travel planner. Produce a day-wise itinerary as valid JSON ONLY.

Input:
- destination: %s
- duration_days: %d
- travelers: %d
- interests: %s
- budget: %s
- client: %s

Return a JSON object with this exact shape:
{ "title": "", "summary": "", "destination": "", "duration": %d, "daily": [{ "day": 1, "morning": "", "afternoon": "", "evening": "", "activities": [], "meals": {}, "notes": "" }], "travel_tips": [], "estimated_total_cost": "" }
The "daily" array must contain exactly %d entries.`

// Generator produces a StructuredPlan with one model call. Pure
// transformation of parameters into a plan; no side effects.
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate builds the plan prompt, calls the model and decodes the result.
// Malformed output never surfaces as an error: it degrades to a one-day
// fallback plan carrying an excerpt of the raw completion. Only transport
// failures from the model backend propagate.
func (g *Generator) Generate(ctx context.Context, p Params) (*StructuredPlan, DecodeStatus, error) {
	days := ExtractDays(p.Duration)

	interests := "general"
	if len(p.Interests) > 0 {
		interests = strings.Join(p.Interests, ",")
	}
	budget := p.Budget
	if budget == "" {
		budget = "moderate"
	}
	client := p.ClientName
	if client == "" {
		client = "unknown"
	}
	travelers := p.Travelers
	if travelers < 1 {
		travelers = 1
	}

	prompt := fmt.Sprintf(generatePromptTemplate,
		p.Destination, days, travelers, interests, budget, client, days, days)

	raw, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, DecodeMalformed, &assistant.GenerationUnavailableError{Step: "generate_plan", Err: err}
	}

	plan, status := DecodePlan(raw)
	if status == DecodeMalformed {
		return fallbackPlan(p.Destination, days, raw), status, nil
	}

	// Backfill fields the model tends to omit.
	if plan.Destination == "" {
		plan.Destination = p.Destination
	}
	if plan.Duration == 0 {
		plan.Duration = days
	}
	return plan, status, nil
}

// fallbackPlan is the degraded single-day structure used when the completion
// has no parseable JSON at all.
func fallbackPlan(destination string, days int, raw string) *StructuredPlan {
	excerpt := truncate(raw, fallbackExcerptLen)
	return &StructuredPlan{
		Title:       fmt.Sprintf("%s %d-day trip", destination, days),
		Summary:     excerpt,
		Destination: destination,
		Duration:    days,
		Daily: []DayPlan{
			{
				Day:        1,
				Morning:    excerpt,
				Activities: []string{},
				Meals:      map[string]string{},
			},
		},
		TravelTips:         []string{},
		EstimatedTotalCost: "TBD",
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
