package contract

import (
	"context"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
