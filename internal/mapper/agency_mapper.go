package mapper

import (
	"time"

	"triponic-be/internal/entity"
	"triponic-be/internal/model"
)

type AgencyMapper struct{}

func NewAgencyMapper() *AgencyMapper {
	return &AgencyMapper{}
}

func (m *AgencyMapper) ToEntity(a *model.Agency) *entity.Agency {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Agency{
		Id:           a.Id,
		Name:         a.Name,
		ContactEmail: a.ContactEmail,
		Phone:        a.Phone,
		Address:      a.Address,
		LogoUrl:      a.LogoUrl,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *AgencyMapper) ToModel(a *entity.Agency) *model.Agency {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Agency{
		Id:           a.Id,
		Name:         a.Name,
		ContactEmail: a.ContactEmail,
		Phone:        a.Phone,
		Address:      a.Address,
		LogoUrl:      a.LogoUrl,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *AgencyMapper) ToEntities(agencies []*model.Agency) []*entity.Agency {
	entities := make([]*entity.Agency, len(agencies))
	for i, a := range agencies {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
