package intent

import (
	"context"
	"errors"
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

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"itinerary", KindItinerary},
		{"invoice", KindInvoice},
		{"booking", KindBooking},
		{"proposal", KindProposal},
		{"general", KindGeneral},
		{" Itinerary ", KindItinerary},
		{"INVOICE", KindInvoice},
		{"trip_plan", KindGeneral},
		{"", KindGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseKind(tt.in)
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyValidJSON(t *testing.T) {
	provider := &stubProvider{out: `{"intent":"itinerary","client_name":"John Smith","destination":"Bali","duration":"5 days","travel_dates":null}`}
	c := NewClassifier(provider)

	in, err := c.Classify(context.Background(), "Create a 5-day Bali itinerary for John Smith")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if in.Kind != KindItinerary {
		t.Errorf("Kind = %v, want %v", in.Kind, KindItinerary)
	}
	if in.ClientName != "John Smith" {
		t.Errorf("ClientName = %q, want %q", in.ClientName, "John Smith")
	}
	if in.Destination != "Bali" {
		t.Errorf("Destination = %q, want %q", in.Destination, "Bali")
	}
	if in.TravelDates != "" {
		t.Errorf("TravelDates = %q, want empty for null", in.TravelDates)
	}
}

func TestClassifyMalformedDefaultsToGeneral(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"prose", "Sure! This looks like an itinerary request."},
		{"truncated json", `{"intent":"itinerary"`},
		{"fenced json", "```json\n{\"intent\":\"invoice\"}\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&stubProvider{out: tt.out})
			in, err := c.Classify(context.Background(), "anything")
			if err != nil {
				t.Fatalf("Classify() error = %v, malformed output must not fail", err)
			}
			if in.Kind != KindGeneral {
				t.Errorf("Kind = %v, want %v", in.Kind, KindGeneral)
			}
		})
	}
}

func TestClassifyTransportFailure(t *testing.T) {
	c := NewClassifier(&stubProvider{err: errors.New("timeout")})

	_, err := c.Classify(context.Background(), "hello")
	if err == nil {
		t.Fatal("Classify() expected error on transport failure")
	}

	var genErr *assistant.GenerationUnavailableError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T, want *assistant.GenerationUnavailableError", err)
	}
	if genErr.Step != "classify" {
		t.Errorf("Step = %q, want %q", genErr.Step, "classify")
	}
}
