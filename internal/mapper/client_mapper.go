package mapper

import (
	"encoding/json"
	"time"

	"triponic-be/internal/entity"
	"triponic-be/internal/model"

	"gorm.io/datatypes"
)

type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) ToEntity(c *model.Client) *entity.Client {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var interests []string
	if len(c.Interests) > 0 {
		// Bad JSON in the column degrades to no interests, not an error.
		_ = json.Unmarshal(c.Interests, &interests)
	}

	return &entity.Client{
		Id:             c.Id,
		AgencyId:       c.AgencyId,
		FullName:       c.FullName,
		Email:          c.Email,
		Phone:          c.Phone,
		Interests:      interests,
		BudgetRange:    c.BudgetRange,
		Notes:          c.Notes,
		PassportNumber: c.PassportNumber,
		Nationality:    c.Nationality,
		VipStatus:      c.VipStatus,
		CreatedBy:      c.CreatedBy,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ClientMapper) ToModel(c *entity.Client) *model.Client {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	interests := c.Interests
	if interests == nil {
		interests = []string{}
	}
	interestsJson, _ := json.Marshal(interests)

	return &model.Client{
		Id:             c.Id,
		AgencyId:       c.AgencyId,
		FullName:       c.FullName,
		Email:          c.Email,
		Phone:          c.Phone,
		Interests:      datatypes.JSON(interestsJson),
		BudgetRange:    c.BudgetRange,
		Notes:          c.Notes,
		PassportNumber: c.PassportNumber,
		Nationality:    c.Nationality,
		VipStatus:      c.VipStatus,
		CreatedBy:      c.CreatedBy,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ClientMapper) ToEntities(clients []*model.Client) []*entity.Client {
	entities := make([]*entity.Client, len(clients))
	for i, c := range clients {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
