package mapper

import (
	"encoding/json"
	"time"

	"triponic-be/internal/entity"
	"triponic-be/internal/model"

	"gorm.io/datatypes"
)

type ItineraryMapper struct{}

func NewItineraryMapper() *ItineraryMapper {
	return &ItineraryMapper{}
}

func (m *ItineraryMapper) ToEntity(i *model.Itinerary) *entity.Itinerary {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Itinerary{
		Id:                 i.Id,
		AgencyId:           i.AgencyId,
		ClientId:           i.ClientId,
		Destination:        i.Destination,
		Duration:           i.Duration,
		Budget:             i.Budget,
		AiGeneratedContent: i.AiGeneratedContent,
		AiGeneratedJson:    json.RawMessage(i.AiGeneratedJson),
		Status:             entity.ItineraryStatus(i.Status),
		CreatedBy:          i.CreatedBy,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ItineraryMapper) ToModel(i *entity.Itinerary) *model.Itinerary {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Itinerary{
		Id:                 i.Id,
		AgencyId:           i.AgencyId,
		ClientId:           i.ClientId,
		Destination:        i.Destination,
		Duration:           i.Duration,
		Budget:             i.Budget,
		AiGeneratedContent: i.AiGeneratedContent,
		AiGeneratedJson:    datatypes.JSON(i.AiGeneratedJson),
		Status:             string(i.Status),
		CreatedBy:          i.CreatedBy,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ItineraryMapper) ToEntities(itineraries []*model.Itinerary) []*entity.Itinerary {
	entities := make([]*entity.Itinerary, len(itineraries))
	for i, it := range itineraries {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
