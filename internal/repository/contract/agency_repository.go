package contract

import (
	"context"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"
)

type AgencyRepository interface {
	Create(ctx context.Context, agency *entity.Agency) error
	Update(ctx context.Context, agency *entity.Agency) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agency, error)
}
