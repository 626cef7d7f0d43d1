package service

import (
	"context"
	"encoding/json"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/pkg/logger"
)

// conversationSink bridges the assistant pipeline to the conversation log
// topic. Record never returns an error to the caller.
type conversationSink struct {
	publisher IPublisherService
	log       logger.ILogger
}

func NewConversationSink(publisher IPublisherService, log logger.ILogger) *conversationSink {
	return &conversationSink{
		publisher: publisher,
		log:       log,
	}
}

func (s *conversationSink) Record(ctx context.Context, conv *entity.Conversation) {
	payload, err := json.Marshal(dto.ConversationLogMessage{
		AgencyId:    conv.AgencyId,
		UserId:      conv.UserId,
		UserMessage: conv.UserMessage,
		AiResponse:  conv.AiResponse,
	})
	if err != nil {
		s.log.Error("assistant", "failed to encode conversation log", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Error("assistant", "failed to publish conversation log", map[string]interface{}{"error": err.Error()})
	}
}
