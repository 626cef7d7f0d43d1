package factory

import (
	"fmt"

	"triponic-be/pkg/llm"
	"triponic-be/pkg/llm/gemini"
	"triponic-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, ollamaBaseURL, geminiAPIKey string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(geminiAPIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
