package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/pkg/logger"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/assistant"
	"triponic-be/pkg/events"
	pktNats "triponic-be/pkg/nats"
	"triponic-be/pkg/llm"

	"github.com/google/uuid"
)

type ILeadService interface {
	GetAll(ctx context.Context, agencyId uuid.UUID) ([]*dto.LeadResponse, error)
	Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.LeadResponse, error)
	Create(ctx context.Context, agencyId, userId uuid.UUID, req *dto.CreateLeadRequest) (*dto.LeadResponse, error)
	Update(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error)
	Delete(ctx context.Context, agencyId, id uuid.UUID) error
	Stats(ctx context.Context, agencyId uuid.UUID) (*dto.LeadStatsResponse, error)
	Qualify(ctx context.Context, agencyId, id uuid.UUID) (*dto.QualifyLeadResponse, error)
	FollowUp(ctx context.Context, agencyId, id uuid.UUID) (*dto.FollowUpResponse, error)
	Score(ctx context.Context, agencyId, id uuid.UUID) (*dto.LeadScoreResponse, error)
	Convert(ctx context.Context, agencyId, userId, id uuid.UUID) (*dto.ConvertLeadResponse, error)
}

const defaultLeadScore = 5

var scoreRe = regexp.MustCompile(`\d+`)

// ParseLeadScore extracts a 1-10 score from a model completion. The first
// digit run wins; anything missing or out of range becomes the neutral
// default.
func ParseLeadScore(raw string) int {
	match := scoreRe.FindString(raw)
	if match == "" {
		return defaultLeadScore
	}
	n, err := strconv.Atoi(match)
	if err != nil || n < 1 || n > 10 {
		return defaultLeadScore
	}
	return n
}

type leadService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       llm.Provider
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewLeadService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ILeadService {
	return &leadService{
		uowFactory:     uowFactory,
		provider:       provider,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *leadService) GetAll(ctx context.Context, agencyId uuid.UUID) ([]*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	leads, err := uow.LeadRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		result = append(result, toLeadResponse(l))
	}
	return result, nil
}

func (s *leadService) Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.LeadResponse, error) {
	lead, err := s.findLead(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

func (s *leadService) Create(ctx context.Context, agencyId, userId uuid.UUID, req *dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	status := entity.LeadStatus(req.Status)
	if req.Status == "" {
		status = entity.LeadStatusNew
	}
	priority := entity.LeadPriority(req.Priority)
	if req.Priority == "" {
		priority = entity.LeadPriorityMedium
	}
	source := req.Source
	if source == "" {
		source = "manual"
	}

	lead := &entity.Lead{
		AgencyId:    agencyId,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Source:      source,
		Destination: req.Destination,
		BudgetRange: req.BudgetRange,
		TravelDate:  req.TravelDate,
		Notes:       req.Notes,
		Priority:    priority,
		Status:      status,
		AssignedTo:  userId,
		CreatedBy:   userId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LeadRepository().Create(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

func (s *leadService) Update(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := s.findLead(ctx, agencyId, req.Id)
	if err != nil {
		return nil, err
	}

	lead.Name = req.Name
	lead.Email = req.Email
	lead.Phone = req.Phone
	lead.Company = req.Company
	lead.Destination = req.Destination
	lead.BudgetRange = req.BudgetRange
	lead.TravelDate = req.TravelDate
	lead.Notes = req.Notes
	if req.Source != "" {
		lead.Source = req.Source
	}
	if req.Status != "" {
		lead.Status = entity.LeadStatus(req.Status)
	}
	if req.Priority != "" {
		lead.Priority = entity.LeadPriority(req.Priority)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LeadRepository().Update(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

func (s *leadService) Delete(ctx context.Context, agencyId, id uuid.UUID) error {
	if _, err := s.findLead(ctx, agencyId, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LeadRepository().Delete(ctx, id)
}

func (s *leadService) Stats(ctx context.Context, agencyId uuid.UUID) (*dto.LeadStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LeadRepository()

	total, err := repo.Count(ctx, specification.OwnedByAgency{AgencyID: agencyId})
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64)
	for _, st := range []entity.LeadStatus{
		entity.LeadStatusNew, entity.LeadStatusContacted, entity.LeadStatusQualified,
		entity.LeadStatusProposal, entity.LeadStatusWon, entity.LeadStatusLost,
	} {
		n, err := repo.Count(ctx,
			specification.OwnedByAgency{AgencyID: agencyId},
			specification.Filter("status", string(st)),
		)
		if err != nil {
			return nil, err
		}
		byStatus[string(st)] = n
	}

	byPriority := make(map[string]int64)
	for _, pr := range []entity.LeadPriority{
		entity.LeadPriorityLow, entity.LeadPriorityMedium, entity.LeadPriorityHigh,
	} {
		n, err := repo.Count(ctx,
			specification.OwnedByAgency{AgencyID: agencyId},
			specification.Filter("priority", string(pr)),
		)
		if err != nil {
			return nil, err
		}
		byPriority[string(pr)] = n
	}

	conversionRate := 0.0
	if total > 0 {
		conversionRate = float64(byStatus[string(entity.LeadStatusWon)]) / float64(total) * 100
	}

	return &dto.LeadStatsResponse{
		Total:          total,
		ByStatus:       byStatus,
		ByPriority:     byPriority,
		ConversionRate: conversionRate,
	}, nil
}

const qualifyPromptTemplate = `You are a travel sales analyst. Assess this lead and answer in 3-5 short sentences:
- fit for the agency (budget vs destination)
- urgency (travel date)
- recommended next step

Lead:
Name: %s
Destination: %s
Budget: %s
Travel date: %s
Source: %s
Notes: %s`

func (s *leadService) Qualify(ctx context.Context, agencyId, id uuid.UUID) (*dto.QualifyLeadResponse, error) {
	lead, err := s.findLead(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(qualifyPromptTemplate,
		lead.Name, lead.Destination, lead.BudgetRange, lead.TravelDate, lead.Source, lead.Notes)

	analysis, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, &assistant.GenerationUnavailableError{Step: "qualify", Err: err}
	}

	return &dto.QualifyLeadResponse{LeadId: lead.Id, Analysis: analysis}, nil
}

const followUpPromptTemplate = `You are a travel sales coach. Suggest 3 concrete follow-up actions for this lead, one line each:

Name: %s
Status: %s
Destination: %s
Travel date: %s
Last notes: %s`

func (s *leadService) FollowUp(ctx context.Context, agencyId, id uuid.UUID) (*dto.FollowUpResponse, error) {
	lead, err := s.findLead(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(followUpPromptTemplate,
		lead.Name, string(lead.Status), lead.Destination, lead.TravelDate, lead.Notes)

	suggestions, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, &assistant.GenerationUnavailableError{Step: "follow_up", Err: err}
	}

	return &dto.FollowUpResponse{LeadId: lead.Id, Suggestions: suggestions}, nil
}

const scorePromptTemplate = `Rate this travel lead 1-10 for conversion likelihood. Reply with ONLY the number.

Destination: %s
Budget: %s
Travel date: %s
Status: %s
Notes: %s`

func (s *leadService) Score(ctx context.Context, agencyId, id uuid.UUID) (*dto.LeadScoreResponse, error) {
	lead, err := s.findLead(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(scorePromptTemplate,
		lead.Destination, lead.BudgetRange, lead.TravelDate, string(lead.Status), lead.Notes)

	raw, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return nil, &assistant.GenerationUnavailableError{Step: "score", Err: err}
	}

	return &dto.LeadScoreResponse{LeadId: lead.Id, Score: ParseLeadScore(raw)}, nil
}

// Convert turns a lead into a client and removes the lead, atomically.
func (s *leadService) Convert(ctx context.Context, agencyId, userId, id uuid.UUID) (*dto.ConvertLeadResponse, error) {
	lead, err := s.findLead(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}

	client := &entity.Client{
		AgencyId:    agencyId,
		FullName:    lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		BudgetRange: lead.BudgetRange,
		Notes:       fmt.Sprintf("Converted from lead (%s). %s", lead.Source, lead.Notes),
		CreatedBy:   userId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ClientRepository().Create(ctx, client); err != nil {
		return nil, err
	}
	if err := uow.LeadRepository().Delete(ctx, lead.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewLeadConverted(agencyId, lead.Id, client.Id)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("lead", "failed to publish lead converted event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ConvertLeadResponse{LeadId: lead.Id, ClientId: client.Id}, nil
}

func (s *leadService) findLead(ctx context.Context, agencyId, id uuid.UUID) (*entity.Lead, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lead, err := uow.LeadRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.New("lead not found")
	}
	return lead, nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		Id:          l.Id,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Company:     l.Company,
		Source:      l.Source,
		Destination: l.Destination,
		BudgetRange: l.BudgetRange,
		TravelDate:  l.TravelDate,
		Notes:       l.Notes,
		Priority:    string(l.Priority),
		Status:      string(l.Status),
		AssignedTo:  l.AssignedTo,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
