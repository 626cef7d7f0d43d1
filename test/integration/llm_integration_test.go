package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"triponic-be/pkg/assistant/intent"
	"triponic-be/pkg/llm"
	"triponic-be/pkg/llm/factory"
)

// newLocalProvider builds an Ollama-backed provider for local runs.
// Gated on OLLAMA_BASE_URL so CI without a model server skips cleanly.
func newLocalProvider(t *testing.T) llm.Provider {
	t.Helper()

	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping LLM integration test: OLLAMA_BASE_URL not set")
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemma:2b"
	}

	provider, err := factory.NewProvider("ollama", model, baseURL, "")
	if err != nil {
		t.Fatalf("Failed to build provider: %v", err)
	}
	return provider
}

func TestOllamaSimpleResponse(t *testing.T) {
	provider := newLocalProvider(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	response, err := provider.Generate(ctx, "Say 'it works' in one short sentence.")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	t.Logf("Response: %s", response)

	if response == "" {
		t.Error("Response should not be empty")
	}
}

func TestOllamaMultiTurnConversation(t *testing.T) {
	provider := newLocalProvider(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	history := []llm.Message{
		{Role: "user", Content: "My name is John"},
		{Role: "assistant", Content: "Nice to meet you, John!"},
		{Role: "user", Content: "What is my name?"},
	}

	response, err := provider.Chat(ctx, history)
	if err != nil {
		t.Fatalf("Multi-turn conversation failed: %v", err)
	}
	t.Logf("Response: %s", response)

	if !strings.Contains(response, "John") {
		t.Logf("Warning: response may not retain the name. Response: %s", response)
	}
}

func TestOllamaIntentClassification(t *testing.T) {
	provider := newLocalProvider(t)
	classifier := intent.NewClassifier(provider)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	testCases := []struct {
		name     string
		message  string
		wantKind intent.Kind
	}{
		{
			name:     "itinerary request",
			message:  "Create a 5-day Bali itinerary for John Smith",
			wantKind: intent.KindItinerary,
		},
		{
			name:     "invoice request",
			message:  "Generate an invoice for Maria Garcia's Tokyo trip",
			wantKind: intent.KindInvoice,
		},
		{
			name:     "general question",
			message:  "When is the best time to visit Japan?",
			wantKind: intent.KindGeneral,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := classifier.Classify(ctx, tc.message)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}

			t.Logf("Message: %s", tc.message)
			t.Logf("Kind: %s (expected: %s)", in.Kind, tc.wantKind)

			// Small local models misclassify sometimes; log instead of fail.
			if in.Kind != tc.wantKind {
				t.Logf("Warning: classification mismatch, got %s want %s", in.Kind, tc.wantKind)
			}
		})
	}
}
