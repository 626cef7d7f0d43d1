package service

import (
	"context"
	"encoding/json"
	"log"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the conversation log topic and persists each turn.
// The chat path already returned by the time these rows are written, so a
// failed insert only costs the audit entry.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ConversationLogMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal conversation log message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	conv := &entity.Conversation{
		AgencyId:    payload.AgencyId,
		UserId:      payload.UserId,
		UserMessage: payload.UserMessage,
		AiResponse:  payload.AiResponse,
	}

	if err := uow.ConversationRepository().Create(ctx, conv); err != nil {
		// Best effort log. Ack anyway: retrying an audit insert forever
		// is worse than losing one row.
		log.Printf("[ERROR] Failed to persist conversation log: %v", err)
	}
	msg.Ack()
}
