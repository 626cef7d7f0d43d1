package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"triponic-be/pkg/assistant"
	"triponic-be/pkg/llm"
)

const classifyPromptTemplate = `Extract fields from the message:
"%s"

Return ONLY JSON:
{ "intent": "itinerary|invoice|booking|proposal|general", "client_name": "string|null", "destination": "string|null", "duration": "string|null", "travel_dates": "string|null" }`

// Classifier turns a free-text message into an Intent with one model call.
// No side effects.
type Classifier struct {
	provider llm.Provider
}

func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

// classifyWire matches the JSON shape the prompt asks for.
type classifyWire struct {
	Intent      string  `json:"intent"`
	ClientName  *string `json:"client_name"`
	Destination *string `json:"destination"`
	Duration    *string `json:"duration"`
	TravelDates *string `json:"travel_dates"`
}

// Classify asks the model for a structured intent. A completion that is not
// strictly valid JSON yields the default general intent; no partial recovery
// is attempted. A misclassification degrades to general chat, never to a
// crash or an accidental write. Transport failures propagate.
func (c *Classifier) Classify(ctx context.Context, message string) (*Intent, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, message)

	raw, err := c.provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return nil, &assistant.GenerationUnavailableError{Step: "classify", Err: err}
	}

	var wire classifyWire
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &wire); err != nil {
		return Default(), nil
	}

	return &Intent{
		Kind:        ParseKind(wire.Intent),
		ClientName:  deref(wire.ClientName),
		Destination: deref(wire.Destination),
		Duration:    deref(wire.Duration),
		TravelDates: deref(wire.TravelDates),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
