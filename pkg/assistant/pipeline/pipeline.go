package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"triponic-be/internal/constant"
	"triponic-be/internal/entity"
	"triponic-be/internal/pkg/logger"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/assistant"
	"triponic-be/pkg/assistant/intent"
	"triponic-be/pkg/assistant/planner"
	"triponic-be/pkg/llm"

	"github.com/google/uuid"
)

// Tenant scopes every read and write of a turn to one agency and the acting
// user. It comes from verified JWT claims, never from the request body.
type Tenant struct {
	AgencyId uuid.UUID
	UserId   uuid.UUID
}

// Turn is one inbound assistant message plus the prior conversation.
type Turn struct {
	Message string
	History []llm.Message
}

// ConversationSink receives the audit record of a freeform chat turn.
// Recording is best effort: implementations must never block the turn and
// the pipeline ignores their failures.
type ConversationSink interface {
	Record(ctx context.Context, conv *entity.Conversation)
}

// Pipeline routes an assistant turn through classify, act, respond.
// Classification decides which branch runs; every branch produces a Result
// or one of the assistant error types, nothing else escapes.
type Pipeline struct {
	classifier *intent.Classifier
	generator  *planner.Generator
	provider   llm.Provider
	repos      unitofwork.RepositoryFactory
	sink       ConversationSink
	log        logger.ILogger
}

func NewPipeline(
	classifier *intent.Classifier,
	generator *planner.Generator,
	provider llm.Provider,
	repos unitofwork.RepositoryFactory,
	sink ConversationSink,
	log logger.ILogger,
) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		generator:  generator,
		provider:   provider,
		repos:      repos,
		sink:       sink,
		log:        log,
	}
}

// HandleTurn runs the full decision tree for one message.
func (p *Pipeline) HandleTurn(ctx context.Context, tenant Tenant, turn Turn) (*Result, error) {
	if strings.TrimSpace(turn.Message) == "" {
		return nil, assistant.ErrInvalidInput
	}

	in, err := p.classifier.Classify(ctx, turn.Message)
	if err != nil {
		return nil, err
	}

	p.log.Info("assistant", "intent classified", map[string]interface{}{
		"agency_id": tenant.AgencyId.String(),
		"intent":    string(in.Kind),
	})

	// Automation branches need an extracted client name; without one the
	// turn is answered as freeform chat, same as booking and proposal talk.
	switch in.Kind {
	case intent.KindItinerary:
		if strings.TrimSpace(in.ClientName) != "" {
			return p.handleItinerary(ctx, tenant, in)
		}
	case intent.KindInvoice:
		if strings.TrimSpace(in.ClientName) != "" {
			return p.handleInvoice(ctx, tenant, in)
		}
	}
	return p.handleChat(ctx, tenant, turn)
}

// resolveClient matches the extracted name against the agency's clients by
// case-insensitive substring. Ties break toward the newest client. An
// unmatched name returns nil with no error; the caller asks for
// clarification.
func (p *Pipeline) resolveClient(ctx context.Context, tenant Tenant, name string) (*entity.Client, error) {
	uow := p.repos.NewUnitOfWork(ctx)
	matches, err := uow.ClientRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: tenant.AgencyId},
		specification.NameContains{Name: name},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 1},
	)
	if err != nil {
		return nil, &assistant.PersistenceError{Op: "resolve_client", Err: err}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (p *Pipeline) handleItinerary(ctx context.Context, tenant Tenant, in *intent.Intent) (*Result, error) {
	client, err := p.resolveClient(ctx, tenant, in.ClientName)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return &Result{
			Success:  true,
			Response: fmt.Sprintf("I couldn't find a client similar to %q. Double-check the name or add them as a client first.", in.ClientName),
		}, nil
	}
	if in.Destination == "" {
		return &Result{
			Success:  true,
			Response: fmt.Sprintf("Where is %s headed? Tell me the destination and I'll put the itinerary together.", client.FullName),
		}, nil
	}
	if in.Duration == "" {
		return &Result{
			Success:  true,
			Response: fmt.Sprintf("How long is the %s trip? A duration like \"5 days\" is enough.", in.Destination),
		}, nil
	}

	plan, status, err := p.generator.Generate(ctx, planner.Params{
		Destination: in.Destination,
		Duration:    in.Duration,
		Interests:   client.Interests,
		Travelers:   1,
		Budget:      client.BudgetRange,
		ClientName:  client.FullName,
	})
	if err != nil {
		return nil, err
	}
	if status == planner.DecodeMalformed {
		p.log.Warn("assistant", "plan output malformed, stored fallback", map[string]interface{}{
			"agency_id":   tenant.AgencyId.String(),
			"destination": in.Destination,
		})
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, &assistant.PersistenceError{Op: "encode_plan", Err: err}
	}

	it := &entity.Itinerary{
		AgencyId:           tenant.AgencyId,
		ClientId:           client.Id,
		Destination:        plan.Destination,
		Duration:           plan.Duration,
		Budget:             client.BudgetRange,
		AiGeneratedContent: plan.Summary,
		AiGeneratedJson:    planJSON,
		Status:             entity.ItineraryStatusDraft,
		CreatedBy:          tenant.UserId,
	}

	uow := p.repos.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, &assistant.PersistenceError{Op: "create_itinerary", Err: err}
	}
	defer uow.Rollback()

	if err := uow.ItineraryRepository().Create(ctx, it); err != nil {
		return nil, &assistant.PersistenceError{Op: "create_itinerary", Err: err}
	}
	if err := uow.Commit(); err != nil {
		return nil, &assistant.PersistenceError{Op: "create_itinerary", Err: err}
	}

	return &Result{
		Success:     true,
		Action:      ActionItineraryCreated,
		Response:    fmt.Sprintf("Done! I've drafted a %d-day %s itinerary for %s. It's saved as a draft you can review and send.", plan.Duration, plan.Destination, client.FullName),
		ItineraryId: &it.Id,
		Plan:        plan,
	}, nil
}

func (p *Pipeline) handleInvoice(ctx context.Context, tenant Tenant, in *intent.Intent) (*Result, error) {
	client, err := p.resolveClient(ctx, tenant, in.ClientName)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return &Result{
			Success:  true,
			Response: fmt.Sprintf("I couldn't find a client similar to %q. Double-check the name or add them as a client first.", in.ClientName),
		}, nil
	}

	uow := p.repos.NewUnitOfWork(ctx)
	itineraries, err := uow.ItineraryRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: tenant.AgencyId},
		specification.ByClientID{ClientID: client.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 1},
	)
	if err != nil {
		return nil, &assistant.PersistenceError{Op: "find_itinerary", Err: err}
	}

	// An invoice is always billed against a trip; without one there is
	// nothing to derive the amount from, so nothing is written.
	if len(itineraries) == 0 {
		return &Result{
			Success:  true,
			Response: fmt.Sprintf("%s doesn't have an itinerary yet. Create one first and I'll draft the invoice from it.", client.FullName),
		}, nil
	}
	latest := itineraries[0]
	itineraryID := latest.Id

	inv := &entity.Invoice{
		AgencyId:    tenant.AgencyId,
		ClientId:    client.Id,
		ItineraryId: &itineraryID,
		Amount:      DeriveAmount(latest.Budget),
		Currency:    "USD",
		Status:      entity.InvoiceStatusDraft,
		CreatedBy:   tenant.UserId,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, &assistant.PersistenceError{Op: "create_invoice", Err: err}
	}
	defer uow.Rollback()

	if err := uow.InvoiceRepository().Create(ctx, inv); err != nil {
		return nil, &assistant.PersistenceError{Op: "create_invoice", Err: err}
	}
	if err := uow.Commit(); err != nil {
		return nil, &assistant.PersistenceError{Op: "create_invoice", Err: err}
	}

	return &Result{
		Success:   true,
		Action:    ActionInvoiceCreated,
		Response:  fmt.Sprintf("Invoice created for %s: %.2f %s (draft). You can add line items before sending it.", client.FullName, inv.Amount, inv.Currency),
		InvoiceId: &inv.Id,
	}, nil
}

// handleChat is the freeform branch: persona prompt, prior history, then the
// new message. The conversation record goes to the sink after the reply is
// in hand; recording failure is invisible to the caller.
func (p *Pipeline) handleChat(ctx context.Context, tenant Tenant, turn Turn) (*Result, error) {
	messages := make([]llm.Message, 0, len(turn.History)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.TonoSystemPromptV1,
	})
	messages = append(messages, turn.History...)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: turn.Message,
	})

	reply, err := p.provider.Chat(ctx, messages)
	if err != nil {
		return nil, &assistant.GenerationUnavailableError{Step: "chat", Err: err}
	}

	if p.sink != nil {
		p.sink.Record(ctx, &entity.Conversation{
			AgencyId:    tenant.AgencyId,
			UserId:      tenant.UserId,
			UserMessage: turn.Message,
			AiResponse:  reply,
		})
	}

	return &Result{
		Success:  true,
		Response: reply,
	}, nil
}
