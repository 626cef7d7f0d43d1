package service

import (
	"context"

	"triponic-be/internal/constant"
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/limiter"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/assistant/pipeline"
	"triponic-be/pkg/llm"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, agencyId, userId uuid.UUID, req *dto.ChatRequest) (*pipeline.Result, error)
	Conversations(ctx context.Context, agencyId uuid.UUID, limit int) ([]*dto.ConversationResponse, error)
}

type assistantService struct {
	pipeline     *pipeline.Pipeline
	uowFactory   unitofwork.RepositoryFactory
	usageLimiter limiter.IUsageLimiter
}

func NewAssistantService(
	p *pipeline.Pipeline,
	uowFactory unitofwork.RepositoryFactory,
	usageLimiter limiter.IUsageLimiter,
) IAssistantService {
	return &assistantService{
		pipeline:     p,
		uowFactory:   uowFactory,
		usageLimiter: usageLimiter,
	}
}

func (s *assistantService) Chat(ctx context.Context, agencyId, userId uuid.UUID, req *dto.ChatRequest) (*pipeline.Result, error) {
	if err := s.usageLimiter.Allow(ctx, agencyId); err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(req.History))
	for _, h := range req.History {
		role := constant.ChatMessageRoleUser
		if h.Role == "assistant" {
			role = constant.ChatMessageRoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: h.Content})
	}

	return s.pipeline.HandleTurn(ctx,
		pipeline.Tenant{AgencyId: agencyId, UserId: userId},
		pipeline.Turn{Message: req.Message, History: history},
	)
}

func (s *assistantService) Conversations(ctx context.Context, agencyId uuid.UUID, limit int) ([]*dto.ConversationResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		result = append(result, &dto.ConversationResponse{
			Id:          c.Id,
			UserMessage: c.UserMessage,
			AiResponse:  c.AiResponse,
			CreatedAt:   c.CreatedAt,
		})
	}
	return result, nil
}
