package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// TonoSystemPromptV1 frames the freeform chat persona. Intent routing
	// happens before this prompt is ever used.
	TonoSystemPromptV1 = `You are Tono, the AI travel assistant inside a B2B travel agency dashboard.
You help travel agents manage their day: clients, leads, itineraries, invoices and bookings.

GUIDELINES:
- Be concise and practical. Agents are busy.
- When asked about travel destinations, give concrete, seasonal advice.
- When the agent asks you to perform an action you cannot perform, explain what
  you can do: draft itineraries, create invoices, and answer travel questions.
- Never invent client data. If you don't know, say so.
- Tone: professional, warm, to the point.`

	// Ollama Configuration
	OllamaDefaultBaseURL = "http://localhost:11434"
	OllamaDefaultModel   = "llama3.1:8b"
	OllamaChatEndpoint   = "/api/chat"
	OllamaGenEndpoint    = "/api/generate"

	// Gemini Configuration
	GeminiDefaultModel = "gemini-2.5-flash-lite"
)
