package contract

import (
	"context"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
