package contract

import (
	"context"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
}
