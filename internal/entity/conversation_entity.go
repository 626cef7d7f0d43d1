package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the best-effort audit row for a freeform assistant turn.
// Writes to it are fire-and-forget; a failed insert never affects the turn.
type Conversation struct {
	Id          uuid.UUID
	AgencyId    uuid.UUID
	UserId      uuid.UUID
	UserMessage string
	AiResponse  string
	CreatedAt   time.Time
}
