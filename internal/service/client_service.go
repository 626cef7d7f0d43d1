package service

import (
	"context"
	"errors"
	"time"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IClientService interface {
	GetAll(ctx context.Context, agencyId uuid.UUID, q string, limit int) ([]*dto.ClientResponse, error)
	Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.ClientResponse, error)
	Create(ctx context.Context, agencyId, userId uuid.UUID, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	Update(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, agencyId, id uuid.UUID) error
	Stats(ctx context.Context, agencyId uuid.UUID) (*dto.ClientStatsResponse, error)
}

type clientService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewClientService(uowFactory unitofwork.RepositoryFactory) IClientService {
	return &clientService{
		uowFactory: uowFactory,
	}
}

func (s *clientService) GetAll(ctx context.Context, agencyId uuid.UUID, q string, limit int) ([]*dto.ClientResponse, error) {
	specs := []specification.Specification{
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if q != "" {
		specs = append(specs, specification.NameContains{Name: q})
	}
	if limit > 0 {
		specs = append(specs, specification.Limit{N: limit})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	clients, err := uow.ClientRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, toClientResponse(c))
	}
	return result, nil
}

func (s *clientService) Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}
	return toClientResponse(client), nil
}

func (s *clientService) Create(ctx context.Context, agencyId, userId uuid.UUID, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	client := &entity.Client{
		AgencyId:       agencyId,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Interests:      req.Interests,
		BudgetRange:    req.BudgetRange,
		Notes:          req.Notes,
		PassportNumber: req.PassportNumber,
		Nationality:    req.Nationality,
		VipStatus:      req.VipStatus,
		CreatedBy:      userId,
	}

	if err := uow.ClientRepository().Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (s *clientService) Update(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	client.FullName = req.FullName
	client.Email = req.Email
	client.Phone = req.Phone
	client.Interests = req.Interests
	client.BudgetRange = req.BudgetRange
	client.Notes = req.Notes
	client.PassportNumber = req.PassportNumber
	client.Nationality = req.Nationality
	client.VipStatus = req.VipStatus

	if err := uow.ClientRepository().Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (s *clientService) Delete(ctx context.Context, agencyId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}
	return uow.ClientRepository().Delete(ctx, id)
}

func (s *clientService) Stats(ctx context.Context, agencyId uuid.UUID) (*dto.ClientStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ClientRepository()

	total, err := repo.Count(ctx, specification.OwnedByAgency{AgencyID: agencyId})
	if err != nil {
		return nil, err
	}
	vip, err := repo.Count(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.Filter("vip_status", true),
	)
	if err != nil {
		return nil, err
	}
	newThisMonth, err := repo.Count(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.CreatedAfter{Time: time.Now().AddDate(0, 0, -30)},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ClientStatsResponse{
		Total:        total,
		Vip:          vip,
		NewThisMonth: newThisMonth,
	}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		Id:             c.Id,
		FullName:       c.FullName,
		Email:          c.Email,
		Phone:          c.Phone,
		Interests:      c.Interests,
		BudgetRange:    c.BudgetRange,
		Notes:          c.Notes,
		PassportNumber: c.PassportNumber,
		Nationality:    c.Nationality,
		VipStatus:      c.VipStatus,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
