package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

type IAgencyService interface {
	Show(ctx context.Context, agencyId uuid.UUID) (*dto.AgencyResponse, error)
	Update(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateAgencyRequest) (*dto.AgencyResponse, error)
	Stats(ctx context.Context, agencyId uuid.UUID) (*dto.AgencyStatsResponse, error)
	Team(ctx context.Context, agencyId uuid.UUID) ([]*dto.TeamMemberResponse, error)
	InviteTeamMember(ctx context.Context, agencyId uuid.UUID, req *dto.InviteTeamMemberRequest) (*dto.TeamMemberResponse, error)
}

const statsCacheTTL = time.Minute

type agencyService struct {
	uowFactory unitofwork.RepositoryFactory
	statsCache *gocache.Cache
}

func NewAgencyService(uowFactory unitofwork.RepositoryFactory) IAgencyService {
	return &agencyService{
		uowFactory: uowFactory,
		statsCache: gocache.New(statsCacheTTL, 5*time.Minute),
	}
}

func (s *agencyService) Show(ctx context.Context, agencyId uuid.UUID) (*dto.AgencyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agency, err := uow.AgencyRepository().FindOne(ctx, specification.ByID{ID: agencyId})
	if err != nil {
		return nil, err
	}
	if agency == nil {
		return nil, errors.New("agency not found")
	}
	return toAgencyResponse(agency), nil
}

func (s *agencyService) Update(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateAgencyRequest) (*dto.AgencyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agency, err := uow.AgencyRepository().FindOne(ctx, specification.ByID{ID: agencyId})
	if err != nil {
		return nil, err
	}
	if agency == nil {
		return nil, errors.New("agency not found")
	}

	agency.Name = req.Name
	agency.ContactEmail = req.ContactEmail
	agency.Phone = req.Phone
	agency.Address = req.Address
	agency.LogoUrl = req.LogoUrl

	if err := uow.AgencyRepository().Update(ctx, agency); err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

// Stats fans out five counts. Dashboards poll this, so results are cached
// for a minute per agency.
func (s *agencyService) Stats(ctx context.Context, agencyId uuid.UUID) (*dto.AgencyStatsResponse, error) {
	cacheKey := fmt.Sprintf("agency_stats:%s", agencyId.String())
	if cached, found := s.statsCache.Get(cacheKey); found {
		return cached.(*dto.AgencyStatsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedByAgency{AgencyID: agencyId}

	clients, err := uow.ClientRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	leads, err := uow.LeadRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	itineraries, err := uow.ItineraryRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	invoices, err := uow.InvoiceRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	team, err := uow.UserRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	stats := &dto.AgencyStatsResponse{
		Clients:     clients,
		Leads:       leads,
		Itineraries: itineraries,
		Invoices:    invoices,
		TeamMembers: team,
	}
	s.statsCache.Set(cacheKey, stats, statsCacheTTL)
	return stats, nil
}

func (s *agencyService) Team(ctx context.Context, agencyId uuid.UUID) ([]*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TeamMemberResponse, 0, len(users))
	for _, u := range users {
		result = append(result, &dto.TeamMemberResponse{
			Id:       u.Id,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     string(u.Role),
			Status:   string(u.Status),
		})
	}
	return result, nil
}

func (s *agencyService) InviteTeamMember(ctx context.Context, agencyId uuid.UUID, req *dto.InviteTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		AgencyId:     agencyId,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         entity.UserRole(req.Role),
		Status:       entity.UserStatusActive,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.TeamMemberResponse{
		Id:       user.Id,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
		Status:   string(user.Status),
	}, nil
}

func toAgencyResponse(a *entity.Agency) *dto.AgencyResponse {
	return &dto.AgencyResponse{
		Id:           a.Id,
		Name:         a.Name,
		ContactEmail: a.ContactEmail,
		Phone:        a.Phone,
		Address:      a.Address,
		LogoUrl:      a.LogoUrl,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
