package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserMessage string    `gorm:"type:text;not null"`
	AiResponse  string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Conversation) TableName() string {
	return "ai_conversations"
}
