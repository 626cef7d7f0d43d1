package service

import (
	"context"
	"encoding/json"
	"errors"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/pkg/logger"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/assistant"
	"triponic-be/pkg/assistant/planner"
	"triponic-be/pkg/events"
	pktNats "triponic-be/pkg/nats"

	"github.com/google/uuid"
)

type IItineraryService interface {
	GetAll(ctx context.Context, agencyId uuid.UUID) ([]*dto.ItineraryResponse, error)
	Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.ItineraryResponse, error)
	Generate(ctx context.Context, agencyId, userId uuid.UUID, req *dto.GenerateItineraryRequest) (*dto.ItineraryResponse, error)
	UpdateStatus(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateItineraryStatusRequest) (*dto.ItineraryResponse, error)
	Delete(ctx context.Context, agencyId, id uuid.UUID) error
}

type itineraryService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *planner.Generator
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewItineraryService(
	uowFactory unitofwork.RepositoryFactory,
	generator *planner.Generator,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IItineraryService {
	return &itineraryService{
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *itineraryService) GetAll(ctx context.Context, agencyId uuid.UUID) ([]*dto.ItineraryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	itineraries, err := uow.ItineraryRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		result = append(result, toItineraryResponse(it))
	}
	return result, nil
}

func (s *itineraryService) Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.ItineraryResponse, error) {
	it, err := s.findItinerary(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}
	return toItineraryResponse(it), nil
}

// Generate is the explicit form of itinerary creation: the agent fills a
// form instead of chatting. Same planner, same draft semantics as the
// assistant branch.
func (s *itineraryService) Generate(ctx context.Context, agencyId, userId uuid.UUID, req *dto.GenerateItineraryRequest) (*dto.ItineraryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: req.ClientId},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	interests := req.Interests
	if len(interests) == 0 {
		interests = client.Interests
	}
	budget := req.Budget
	if budget == "" {
		budget = client.BudgetRange
	}

	plan, status, err := s.generator.Generate(ctx, planner.Params{
		Destination: req.Destination,
		Duration:    req.Duration,
		Interests:   interests,
		Travelers:   req.Travelers,
		Budget:      budget,
		ClientName:  client.FullName,
	})
	if err != nil {
		return nil, err
	}
	if status == planner.DecodeMalformed {
		s.log.Warn("itinerary", "plan output malformed, stored fallback", map[string]interface{}{
			"agency_id":   agencyId.String(),
			"destination": req.Destination,
		})
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, &assistant.PersistenceError{Op: "encode_plan", Err: err}
	}

	it := &entity.Itinerary{
		AgencyId:           agencyId,
		ClientId:           client.Id,
		Destination:        plan.Destination,
		Duration:           plan.Duration,
		Budget:             budget,
		AiGeneratedContent: plan.Summary,
		AiGeneratedJson:    planJSON,
		Status:             entity.ItineraryStatusDraft,
		CreatedBy:          userId,
	}

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

	if s.eventPublisher != nil {
		evt := events.NewItineraryCreated(agencyId, it.Id, it.Destination, "manual")
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("itinerary", "failed to publish itinerary created event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toItineraryResponse(it), nil
}

func (s *itineraryService) UpdateStatus(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateItineraryStatusRequest) (*dto.ItineraryResponse, error) {
	switch entity.ItineraryStatus(req.Status) {
	case entity.ItineraryStatusDraft, entity.ItineraryStatusSent, entity.ItineraryStatusApproved,
		entity.ItineraryStatusBooked, entity.ItineraryStatusCancelled:
	default:
		return nil, errors.New("invalid itinerary status")
	}

	it, err := s.findItinerary(ctx, agencyId, req.Id)
	if err != nil {
		return nil, err
	}

	it.Status = entity.ItineraryStatus(req.Status)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ItineraryRepository().Update(ctx, it); err != nil {
		return nil, err
	}
	return toItineraryResponse(it), nil
}

func (s *itineraryService) Delete(ctx context.Context, agencyId, id uuid.UUID) error {
	if _, err := s.findItinerary(ctx, agencyId, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ItineraryRepository().Delete(ctx, id)
}

func (s *itineraryService) findItinerary(ctx context.Context, agencyId, id uuid.UUID) (*entity.Itinerary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	it, err := uow.ItineraryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, errors.New("itinerary not found")
	}
	return it, nil
}

func toItineraryResponse(it *entity.Itinerary) *dto.ItineraryResponse {
	return &dto.ItineraryResponse{
		Id:                 it.Id,
		ClientId:           it.ClientId,
		Destination:        it.Destination,
		Duration:           it.Duration,
		Budget:             it.Budget,
		AiGeneratedContent: it.AiGeneratedContent,
		AiGeneratedJson:    it.AiGeneratedJson,
		Status:             string(it.Status),
		CreatedAt:          it.CreatedAt,
		UpdatedAt:          it.UpdatedAt,
	}
}
