package mapper

import (
	"time"

	"triponic-be/internal/entity"
	"triponic-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Lead{
		Id:          l.Id,
		AgencyId:    l.AgencyId,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Company:     l.Company,
		Source:      l.Source,
		Destination: l.Destination,
		BudgetRange: l.BudgetRange,
		TravelDate:  l.TravelDate,
		Notes:       l.Notes,
		Priority:    entity.LeadPriority(l.Priority),
		Status:      entity.LeadStatus(l.Status),
		AssignedTo:  l.AssignedTo,
		CreatedBy:   l.CreatedBy,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Lead{
		Id:          l.Id,
		AgencyId:    l.AgencyId,
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
		CreatedBy:   l.CreatedBy,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, len(leads))
	for i, l := range leads {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
