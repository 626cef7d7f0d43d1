package contract

import (
	"context"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *entity.Itinerary) error
	Update(ctx context.Context, itinerary *entity.Itinerary) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Itinerary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Itinerary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
