package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatHistoryItem struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message string            `json:"message" validate:"required"`
	History []ChatHistoryItem `json:"history" validate:"dive"`
}

type ConversationResponse struct {
	Id          uuid.UUID `json:"id"`
	UserMessage string    `json:"user_message"`
	AiResponse  string    `json:"ai_response"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationLogMessage is the payload published to the conversation log
// topic after a freeform chat turn.
type ConversationLogMessage struct {
	AgencyId    uuid.UUID `json:"agency_id"`
	UserId      uuid.UUID `json:"user_id"`
	UserMessage string    `json:"user_message"`
	AiResponse  string    `json:"ai_response"`
}
