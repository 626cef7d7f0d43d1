package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type GenerateItineraryRequest struct {
	ClientId    uuid.UUID `json:"client_id" validate:"required"`
	Destination string    `json:"destination" validate:"required"`
	Duration    string    `json:"duration" validate:"required"`
	Travelers   int       `json:"travelers"`
	Interests   []string  `json:"interests"`
	Budget      string    `json:"budget"`
}

type UpdateItineraryStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required"`
}

type ItineraryResponse struct {
	Id                 uuid.UUID       `json:"id"`
	ClientId           uuid.UUID       `json:"client_id"`
	Destination        string          `json:"destination"`
	Duration           int             `json:"duration"`
	Budget             string          `json:"budget"`
	AiGeneratedContent string          `json:"ai_generated_content"`
	AiGeneratedJson    json.RawMessage `json:"ai_generated_json,omitempty"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at"`
}
