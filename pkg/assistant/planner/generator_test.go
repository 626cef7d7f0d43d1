package planner

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"triponic-be/pkg/assistant"
	"triponic-be/pkg/llm"
)

type stubProvider struct {
	out string
	err error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.out, s.err
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.out, s.err
}

func TestExtractDays(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"5 days", 5},
		{"about a week, 7 nights", 7},
		{"10", 10},
		{"two weeks", 1},
		{"", 1},
		{"0 days", 1},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			got := ExtractDays(tt.duration)
			if got != tt.want {
				t.Errorf("ExtractDays(%q) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestDecodePlan(t *testing.T) {
	strict := `{"title":"Bali Escape","destination":"Bali","duration":3,"daily":[{"day":1}]}`
	fenced := "Here is your plan:\n```json\n" + strict + "\n```\nEnjoy!"

	tests := []struct {
		name       string
		raw        string
		wantStatus DecodeStatus
		wantTitle  string
	}{
		{"strict json", strict, DecodeOK, "Bali Escape"},
		{"json inside prose", fenced, DecodeDegraded, "Bali Escape"},
		{"no json at all", "Day 1: arrive and relax at the beach.", DecodeMalformed, ""},
		{"broken json", `{"title": "oops"`, DecodeMalformed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, status := DecodePlan(tt.raw)
			if status != tt.wantStatus {
				t.Fatalf("status = %v, want %v", status, tt.wantStatus)
			}
			if tt.wantStatus == DecodeMalformed {
				if plan != nil {
					t.Errorf("plan = %+v, want nil", plan)
				}
				return
			}
			if plan.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", plan.Title, tt.wantTitle)
			}
		})
	}
}

func TestGenerateBackfillsOmittedFields(t *testing.T) {
	provider := &stubProvider{out: `{"title":"Trip","daily":[{"day":1},{"day":2},{"day":3}]}`}
	g := NewGenerator(provider)

	plan, status, err := g.Generate(context.Background(), Params{
		Destination: "Tokyo",
		Duration:    "3 days",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if status != DecodeOK {
		t.Fatalf("status = %v, want %v", status, DecodeOK)
	}
	if plan.Destination != "Tokyo" {
		t.Errorf("Destination = %q, want %q", plan.Destination, "Tokyo")
	}
	if plan.Duration != 3 {
		t.Errorf("Duration = %d, want 3", plan.Duration)
	}
}

func TestGenerateFallbackOnMalformedOutput(t *testing.T) {
	raw := strings.Repeat("a", 300)
	provider := &stubProvider{out: raw}
	g := NewGenerator(provider)

	plan, status, err := g.Generate(context.Background(), Params{
		Destination: "Bali",
		Duration:    "4 days",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v, malformed output must not fail", err)
	}
	if status != DecodeMalformed {
		t.Fatalf("status = %v, want %v", status, DecodeMalformed)
	}
	if plan.Destination != "Bali" || plan.Duration != 4 {
		t.Errorf("fallback plan = %s/%d, want Bali/4", plan.Destination, plan.Duration)
	}
	if len(plan.Daily) != 1 || plan.Daily[0].Day != 1 {
		t.Fatalf("fallback Daily = %+v, want single day 1", plan.Daily)
	}
	wantExcerpt := raw[:fallbackExcerptLen]
	if plan.Summary != wantExcerpt {
		t.Errorf("Summary excerpt length = %d, want %d", len(plan.Summary), fallbackExcerptLen)
	}
	if plan.Daily[0].Morning != wantExcerpt {
		t.Errorf("Morning excerpt length = %d, want %d", len(plan.Daily[0].Morning), fallbackExcerptLen)
	}
	if plan.EstimatedTotalCost != "TBD" {
		t.Errorf("EstimatedTotalCost = %q, want TBD", plan.EstimatedTotalCost)
	}
}

func TestGenerateSameParamsSamePlan(t *testing.T) {
	provider := &stubProvider{out: `{"title":"Tokyo Highlights","summary":"Temples and food.","destination":"Tokyo","duration":3,"daily":[{"day":1},{"day":2},{"day":3}],"travel_tips":["carry cash"],"estimated_total_cost":"$2000"}`}
	g := NewGenerator(provider)

	params := Params{
		Destination: "Tokyo",
		Duration:    "3 days",
		Interests:   []string{"culture", "food"},
		Travelers:   2,
		Budget:      "$2000",
		ClientName:  "Maria Garcia",
	}

	first, firstStatus, err := g.Generate(context.Background(), params)
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}
	second, secondStatus, err := g.Generate(context.Background(), params)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}

	if firstStatus != secondStatus {
		t.Errorf("statuses differ: %v vs %v", firstStatus, secondStatus)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("plans differ for identical params:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	g := NewGenerator(provider)

	_, _, err := g.Generate(context.Background(), Params{Destination: "Bali", Duration: "3 days"})
	if err == nil {
		t.Fatal("Generate() expected error on transport failure")
	}

	var genErr *assistant.GenerationUnavailableError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T, want *assistant.GenerationUnavailableError", err)
	}
	if genErr.Step != "generate_plan" {
		t.Errorf("Step = %q, want %q", genErr.Step, "generate_plan")
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	s := strings.Repeat("é", 250)
	got := truncate(s, fallbackExcerptLen)
	if runes := []rune(got); len(runes) != fallbackExcerptLen {
		t.Errorf("truncate rune count = %d, want %d", len(runes), fallbackExcerptLen)
	}
}
